package main

import (
	handler "lms-show/biz/adaptor/controller"
	"lms-show/biz/adaptor/middleware"
	"lms-show/biz/infrastructure/consts"
	"lms-show/provider"

	"github.com/cloudwego/hertz/pkg/app/server"
)

// customizeRegister registers customize routers.
func customizedRegister(r *server.Hertz) {
	r.GET("/ping", handler.Ping)

	users := provider.Get().UserService
	admin := middleware.Allow(users, consts.RoleAdmin)
	learner := middleware.Allow(users, consts.RoleLearner)
	trainer := middleware.Allow(users, consts.RoleTrainer)
	anyone := middleware.Allow(users, consts.RoleAdmin, consts.RoleTrainer, consts.RoleLearner)

	api := r.Group("/api")
	{
		// 静态路径需在 :classId 之前注册
		class := api.Group("/class")
		class.POST("/new", admin, handler.CreateNewClass)
		class.GET("/enrolled", learner, handler.GetEnrolledClass)
		class.GET("/teach", trainer, handler.GetTeachingClass)
		class.PUT("/approve", admin, handler.ApproveSelfEnrollment)

		class.GET("/:classId/info", handler.GetClassInfo)
		class.GET("/:classId/contents", handler.GetClassContent)
		class.PUT("/:classId/learners", handler.UpdateClassLearners)
		class.GET("/:classId/learners", handler.GetLearnerInClass)
		class.PUT("/:classId/trainers", handler.UpdateClassTrainers)
		class.GET("/:classId/trainers", handler.GetTrainerInClass)
		class.POST("/:classId/apply", learner, handler.ApplyToClass)
		class.GET("/:classId/applicants", handler.GetApplicants)
		class.GET("/:classId/quizzes", handler.GetQuizzesByClass)

		class.POST("/:classId/chapter/new", handler.NewChapter)
		class.POST("/:classId/:chapterId/section/new", handler.NewSection)
		class.PUT("/:classId/:chapterId/:sectionId/upload/links", handler.UploadLinks)
		class.POST("/:classId/:chapterId/:sectionId/upload/file", handler.UploadContent)
		class.GET("/:classId/:chapterId/:sectionId/contents", handler.GetContent)

		course := api.Group("/course")
		course.POST("/new", handler.CreateCourse)
		course.GET("/:courseCode/info", handler.GetCourseInfo)
		course.GET("/:courseCode/classes", handler.GetClassesByCourse)

		api.GET("/quiz/class/:classId", handler.GetQuizzesByClass)
		api.GET("/user/:username", handler.GetUser)
		api.POST("/file/upload", anyone, handler.UploadFile)
	}
}
