package service_test

import (
	"context"
	"errors"
	"testing"

	"go_5_course_track/internal/config"
	"go_5_course_track/internal/model"
	"go_5_course_track/internal/repository/mocks"
	"go_5_course_track/internal/service"
	servicemocks "go_5_course_track/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type EnrollmentServiceTestSuite struct {
	suite.Suite

	mockCourseRepo     *mocks.CourseRepository
	mockEnrollmentRepo *mocks.EnrollmentRepository
	mockUserRepo       *mocks.UserRepository
	mockMailer         *servicemocks.Mailer
	enrollmentService  service.EnrollmentService

	student *model.Actor
	course  *model.Course
}

func (s *EnrollmentServiceTestSuite) SetupTest() {
	s.mockCourseRepo = new(mocks.CourseRepository)
	s.mockEnrollmentRepo = new(mocks.EnrollmentRepository)
	s.mockUserRepo = new(mocks.UserRepository)
	s.mockMailer = new(servicemocks.Mailer)

	cfg := &config.Config{App: config.AppConfig{Name: "CourseTrack", FrontendURL: "http://localhost:3000"}}
	s.enrollmentService = service.NewEnrollmentService(nil, s.mockCourseRepo, s.mockEnrollmentRepo, s.mockUserRepo, s.mockMailer, service.NewAccessGuard(), cfg)

	s.student = &model.Actor{UserID: uuid.New(), Role: model.RoleStudent}
	s.course = &model.Course{CourseID: uuid.New(), Title: "Go入門", InstructorID: uuid.New()}
}

func (s *EnrollmentServiceTestSuite) TearDownTest() {
	s.mockCourseRepo.AssertExpectations(s.T())
	s.mockEnrollmentRepo.AssertExpectations(s.T())
	s.mockUserRepo.AssertExpectations(s.T())
	s.mockMailer.AssertExpectations(s.T())
}

func TestEnrollmentService(t *testing.T) {
	suite.Run(t, new(EnrollmentServiceTestSuite))
}

func (s *EnrollmentServiceTestSuite) TestEnroll() {
	testCases := []struct {
		name       string
		actor      func() *model.Actor
		setupMocks func()
		wantErr    error
		wantCode   string
	}{
		{
			name:  "Success - 登録して通知を送る",
			actor: func() *model.Actor { return s.student },
			setupMocks: func() {
				s.mockCourseRepo.On("FindByID", mock.Anything, mock.Anything, s.course.CourseID).Return(s.course, nil).Once()
				s.mockEnrollmentRepo.On("Exists", mock.Anything, mock.Anything, s.course.CourseID, s.student.UserID).Return(false, nil).Once()
				s.mockEnrollmentRepo.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(e *model.Enrollment) bool {
					return e.CourseID == s.course.CourseID && e.UserID == s.student.UserID && e.EnrollmentID != uuid.Nil
				})).Return(nil).Once()
				s.mockUserRepo.On("FindByID", mock.Anything, mock.Anything, s.student.UserID).
					Return(&model.User{UserID: s.student.UserID, Name: "花子", Email: "hanako@example.com"}, nil).Once()
				s.mockMailer.On("Send", mock.Anything, "hanako@example.com", mock.MatchedBy(func(subject string) bool {
					return subject == "【CourseTrack】コース「Go入門」への登録が完了しました"
				}), mock.Anything).Return(nil).Once()
			},
		},
		{
			name:  "Success - 通知の失敗は登録を取り消さない",
			actor: func() *model.Actor { return s.student },
			setupMocks: func() {
				s.mockCourseRepo.On("FindByID", mock.Anything, mock.Anything, s.course.CourseID).Return(s.course, nil).Once()
				s.mockEnrollmentRepo.On("Exists", mock.Anything, mock.Anything, s.course.CourseID, s.student.UserID).Return(false, nil).Once()
				s.mockEnrollmentRepo.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*model.Enrollment")).Return(nil).Once()
				s.mockUserRepo.On("FindByID", mock.Anything, mock.Anything, s.student.UserID).
					Return(&model.User{UserID: s.student.UserID, Email: "hanako@example.com"}, nil).Once()
				s.mockMailer.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down")).Once()
			},
		},
		{
			name:     "Failure - 登録済み",
			actor:    func() *model.Actor { return s.student },
			wantErr:  model.ErrAlreadyEnrolled,
			wantCode: "ALREADY_ENROLLED",
			setupMocks: func() {
				s.mockCourseRepo.On("FindByID", mock.Anything, mock.Anything, s.course.CourseID).Return(s.course, nil).Once()
				s.mockEnrollmentRepo.On("Exists", mock.Anything, mock.Anything, s.course.CourseID, s.student.UserID).Return(true, nil).Once()
			},
		},
		{
			name:     "Failure - 同時登録で一意制約違反",
			actor:    func() *model.Actor { return s.student },
			wantErr:  model.ErrAlreadyEnrolled,
			wantCode: "ALREADY_ENROLLED",
			setupMocks: func() {
				s.mockCourseRepo.On("FindByID", mock.Anything, mock.Anything, s.course.CourseID).Return(s.course, nil).Once()
				s.mockEnrollmentRepo.On("Exists", mock.Anything, mock.Anything, s.course.CourseID, s.student.UserID).Return(false, nil).Once()
				s.mockEnrollmentRepo.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*model.Enrollment")).Return(model.ErrAlreadyEnrolled).Once()
			},
		},
		{
			name:     "Failure - コースが存在しない",
			actor:    func() *model.Actor { return s.student },
			wantErr:  model.ErrNotFound,
			wantCode: "COURSE_NOT_FOUND",
			setupMocks: func() {
				s.mockCourseRepo.On("FindByID", mock.Anything, mock.Anything, s.course.CourseID).Return(nil, model.ErrNotFound).Once()
			},
		},
		{
			name:       "Failure - 講師は登録できない",
			actor:      func() *model.Actor { return &model.Actor{UserID: uuid.New(), Role: model.RoleInstructor} },
			wantErr:    model.ErrForbidden,
			wantCode:   "FORBIDDEN",
			setupMocks: func() {},
		},
		{
			name:       "Failure - 未ログイン",
			actor:      func() *model.Actor { return nil },
			wantErr:    model.ErrUnauthenticated,
			wantCode:   "UNAUTHENTICATED",
			setupMocks: func() {},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			tc.setupMocks()

			err := s.enrollmentService.Enroll(context.Background(), tc.actor(), s.course.CourseID)

			if tc.wantErr == nil {
				s.NoError(err)
			} else {
				s.ErrorIs(err, tc.wantErr)
				var appErr *model.AppError
				s.Require().ErrorAs(err, &appErr)
				s.Equal(tc.wantCode, appErr.Detail.Code)
			}
			s.TearDownTest()
		})
	}
}

func (s *EnrollmentServiceTestSuite) TestIsEnrolled() {
	s.mockEnrollmentRepo.On("Exists", mock.Anything, mock.Anything, s.course.CourseID, s.student.UserID).Return(true, nil).Once()

	enrolled, err := s.enrollmentService.IsEnrolled(context.Background(), s.student.UserID, s.course.CourseID)
	s.NoError(err)
	s.True(enrolled)
}
