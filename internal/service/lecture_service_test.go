package service

import (
	"context"
	"testing"

	"go_5_course_track/internal/model"
	"go_5_course_track/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestLectureService(db *gorm.DB) LectureService {
	return NewLectureService(db,
		repository.NewGormCourseRepository(),
		repository.NewGormLectureRepository(),
		repository.NewGormEnrollmentRepository(),
		repository.NewGormCommentRepository(),
		NewAccessGuard())
}

func TestLectureService_AddAppendsInOrder(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newTestLectureService(db)
	owner := seedUser(t, db, model.RoleInstructor)
	course := seedCourse(t, db, owner.UserID, 0)

	for i, title := range []string{"導入", "変数", "関数"} {
		lecture, err := svc.AddLecture(ctx, actorOf(owner), course.CourseID, &model.AddLectureRequest{
			Title:    title,
			MediaURL: "https://media.example.com/" + title,
		})
		require.NoError(t, err)
		assert.Equal(t, i+1, lecture.Position)
	}

	summaries, err := svc.ListLectures(ctx, course.CourseID)
	require.NoError(t, err)
	require.Len(t, summaries, 3)
	assert.Equal(t, []string{"導入", "変数", "関数"}, []string{summaries[0].Title, summaries[1].Title, summaries[2].Title})

	other := seedUser(t, db, model.RoleInstructor)
	_, err = svc.AddLecture(ctx, actorOf(other), course.CourseID, &model.AddLectureRequest{Title: "x", MediaURL: "https://x"})
	assert.ErrorIs(t, err, model.ErrForbidden)

	_, err = svc.AddLecture(ctx, actorOf(owner), uuid.New(), &model.AddLectureRequest{Title: "x", MediaURL: "https://x"})
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestLectureService_GetLectureAccess(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newTestLectureService(db)
	owner := seedUser(t, db, model.RoleInstructor)
	enrolled := seedUser(t, db, model.RoleStudent)
	stranger := seedUser(t, db, model.RoleStudent)
	admin := seedUser(t, db, model.RoleAdmin)
	course := seedCourse(t, db, owner.UserID, 2)
	seedEnrollment(t, db, course.CourseID, enrolled.UserID)
	lectureID := course.Lectures[1].LectureID

	for _, u := range []*model.User{owner, enrolled, admin} {
		lecture, err := svc.GetLecture(ctx, actorOf(u), course.CourseID, lectureID)
		require.NoError(t, err, string(u.Role))
		assert.Equal(t, course.Lectures[1].MediaURL, lecture.MediaURL)
	}

	_, err := svc.GetLecture(ctx, actorOf(stranger), course.CourseID, lectureID)
	assert.ErrorIs(t, err, model.ErrNotEnrolled)

	_, err = svc.GetLecture(ctx, nil, course.CourseID, lectureID)
	assert.ErrorIs(t, err, model.ErrUnauthenticated)

	_, err = svc.GetLecture(ctx, actorOf(enrolled), course.CourseID, uuid.New())
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestLectureService_DeleteRemovesComments(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newTestLectureService(db)
	owner := seedUser(t, db, model.RoleInstructor)
	student := seedUser(t, db, model.RoleStudent)
	course := seedCourse(t, db, owner.UserID, 2)
	target, keep := course.Lectures[0], course.Lectures[1]

	for _, l := range course.Lectures {
		require.NoError(t, db.Omit("Author").Create(&model.Comment{
			CommentID: uuid.New(), LectureID: l.LectureID, UserID: student.UserID, Text: "メモ",
		}).Error)
	}

	assert.ErrorIs(t, svc.DeleteLecture(ctx, actorOf(student), course.CourseID, target.LectureID), model.ErrForbidden)
	require.NoError(t, svc.DeleteLecture(ctx, actorOf(owner), course.CourseID, target.LectureID))

	assert.Zero(t, countRows(t, db, &model.Lecture{}, "lecture_id = ?", target.LectureID))
	assert.Zero(t, countRows(t, db, &model.Comment{}, "lecture_id = ?", target.LectureID))
	assert.Equal(t, int64(1), countRows(t, db, &model.Comment{}, "lecture_id = ?", keep.LectureID))

	// 別コースの講義IDは見つからない扱い
	otherCourse := seedCourse(t, db, owner.UserID, 1)
	err := svc.DeleteLecture(ctx, actorOf(owner), course.CourseID, otherCourse.Lectures[0].LectureID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}
