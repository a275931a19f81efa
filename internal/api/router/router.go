package router

import (
	"github.com/VladimirZhdanov/university-records/internal/api/handlers"
	"github.com/VladimirZhdanov/university-records/internal/api/middleware"
	domain "github.com/VladimirZhdanov/university-records/internal/domain/university"
	"github.com/VladimirZhdanov/university-records/internal/infrastructure/repository"
	"github.com/VladimirZhdanov/university-records/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

// NewRouter builds the full API over one database connection. The sqlx
// handle wraps the same pool gorm holds.
func NewRouter(db *gorm.DB, sx *sqlx.DB) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(cors.Default())
	r.Use(gin.Recovery())

	classRoomRepo := repository.NewClassRoomRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	teacherRepo := repository.NewTeacherRepository(db)
	lectureRepo := repository.NewLectureRepository(db, sx)
	rosterRepo := repository.NewRosterRepository(sx)

	lectureService := service.NewLectureService(lectureRepo, teacherRepo, groupRepo, classRoomRepo, courseRepo)
	rosterService := service.NewRosterService(rosterRepo)
	scheduleService := service.NewScheduleService(studentRepo, teacherRepo, groupRepo, lectureService)

	classRoomHandler := handlers.NewCatalogHandler("class room", classRoomRepo,
		func(e *domain.ClassRoom, id int64) { e.ID = id })
	departmentHandler := handlers.NewCatalogHandler("department", departmentRepo,
		func(e *domain.Department, id int64) { e.ID = id })
	courseHandler := handlers.NewCatalogHandler("course", courseRepo,
		func(e *domain.Course, id int64) { e.ID = id })
	groupHandler := handlers.NewCatalogHandler("group", groupRepo,
		func(e *domain.Group, id int64) { e.ID = id })
	studentHandler := handlers.NewStudentHandler(studentRepo)
	teacherHandler := handlers.NewTeacherHandler(teacherRepo)
	lectureHandler := handlers.NewLectureHandler(lectureService, lectureRepo, teacherRepo, groupRepo, classRoomRepo)
	rosterHandler := handlers.NewRosterHandler(rosterService, studentRepo, courseRepo, groupRepo)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	healthHandler := handlers.NewHealthHandler(db)

	r.GET("/health", healthHandler.HealthCheck)
	r.GET("/ready", healthHandler.ReadinessCheck)
	r.GET("/live", healthHandler.LivenessCheck)

	v1 := r.Group("/api/v1")
	{
		classRooms := v1.Group("/classrooms")
		{
			classRooms.POST("", classRoomHandler.Create)
			classRooms.GET("", classRoomHandler.List)
			classRooms.GET("/:id", classRoomHandler.Get)
			classRooms.GET("/name/:name", classRoomHandler.GetByName)
			classRooms.PUT("/:id", classRoomHandler.Update)
			classRooms.DELETE("/:id", classRoomHandler.Delete)
		}

		departments := v1.Group("/departments")
		{
			departments.POST("", departmentHandler.Create)
			departments.GET("", departmentHandler.List)
			departments.GET("/:id", departmentHandler.Get)
			departments.GET("/name/:name", departmentHandler.GetByName)
			departments.PUT("/:id", departmentHandler.Update)
			departments.DELETE("/:id", departmentHandler.Delete)
		}

		courses := v1.Group("/courses")
		{
			courses.POST("", courseHandler.Create)
			courses.GET("", courseHandler.List)
			courses.GET("/:id", courseHandler.Get)
			courses.GET("/name/:name", courseHandler.GetByName)
			courses.PUT("/:id", courseHandler.Update)
			courses.DELETE("/:id", courseHandler.Delete)
			courses.GET("/:id/students", rosterHandler.StudentsOfCourse)
		}

		groups := v1.Group("/groups")
		{
			groups.POST("", groupHandler.Create)
			groups.GET("", groupHandler.List)
			groups.GET("/:id", groupHandler.Get)
			groups.GET("/name/:name", groupHandler.GetByName)
			groups.PUT("/:id", groupHandler.Update)
			groups.DELETE("/:id", groupHandler.Delete)
		}

		students := v1.Group("/students")
		{
			students.POST("", studentHandler.Create)
			students.GET("", studentHandler.List)
			students.GET("/:id", studentHandler.Get)
			students.GET("/name/:first_name/:last_name", studentHandler.GetByFullName)
			students.PUT("/:id", studentHandler.Update)
			students.DELETE("/:id", studentHandler.Delete)
			students.GET("/:id/courses", rosterHandler.CoursesOfStudent)
			students.PUT("/:id/group", rosterHandler.ChangeGroup)
		}

		teachers := v1.Group("/teachers")
		{
			teachers.POST("", teacherHandler.Create)
			teachers.GET("", teacherHandler.List)
			teachers.GET("/:id", teacherHandler.Get)
			teachers.GET("/name/:first_name/:last_name", teacherHandler.GetByFullName)
			teachers.PUT("/:id", teacherHandler.Update)
			teachers.DELETE("/:id", teacherHandler.Delete)
		}

		lectures := v1.Group("/lectures")
		{
			lectures.POST("", lectureHandler.Create)
			lectures.GET("", lectureHandler.List)
			lectures.GET("/:id", lectureHandler.Get)
			lectures.GET("/:id/details", lectureHandler.GetDetails)
			lectures.GET("/name/:name", lectureHandler.GetByName)
			lectures.PUT("/:id", lectureHandler.Update)
			lectures.DELETE("/:id", lectureHandler.Delete)
			lectures.PUT("/:id/teacher", lectureHandler.ChangeTeacher)
			lectures.PUT("/:id/classroom", lectureHandler.ChangeClassRoom)
			lectures.PUT("/:id/group", lectureHandler.ChangeGroup)
		}

		roster := v1.Group("/roster")
		{
			roster.POST("", rosterHandler.Assign)
			roster.POST("/bulk", rosterHandler.BulkAssign)
		}

		schedules := v1.Group("/schedules")
		{
			schedules.GET("/students/:first_name/:last_name", scheduleHandler.StudentSchedule)
			schedules.GET("/teachers/:first_name/:last_name", scheduleHandler.TeacherSchedule)
		}
	}

	return r
}
