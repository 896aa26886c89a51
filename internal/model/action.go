package model

// Action は Access Guard が判定する操作の種類
type Action string

const (
	ActionCreateCourse  Action = "createCourse"
	ActionUpdateCourse  Action = "updateCourse"
	ActionDeleteCourse  Action = "deleteCourse"
	ActionAddLecture    Action = "addLecture"
	ActionDeleteLecture Action = "deleteLecture"
	ActionEnroll        Action = "enroll"
	ActionMarkProgress  Action = "markProgress"
	ActionPostComment   Action = "postComment"
	ActionAdminOverride Action = "adminOverride"
)
