package services

import (
	"context"

	"github.com/google/uuid"

	"schoolhub/internal/models/db_models"
	"schoolhub/internal/models/request_models"
	"schoolhub/internal/repositories"
	"schoolhub/pkg/utils"
)

// Campus services cover the day-to-day features schools run on top of the
// student roster: notices, homework, manual fee collection, transport
// vehicles and events. Plan-gating for these endpoints lives in middleware,
// so the services stay plain CRUD.

type NoticeServiceInterface interface {
	PublishNotice(ctx context.Context, schoolID uuid.UUID, request request_models.CreateNoticeRequest) (*db_models.Notice, error)
	ListNotices(ctx context.Context, schoolID string) ([]db_models.Notice, error)
	DeleteNotice(ctx context.Context, schoolID, id string) error
}

type HomeworkServiceInterface interface {
	AssignHomework(ctx context.Context, schoolID uuid.UUID, request request_models.CreateHomeworkRequest) (*db_models.Homework, error)
	ListHomework(ctx context.Context, schoolID string) ([]db_models.Homework, error)
	DeleteHomework(ctx context.Context, schoolID, id string) error
}

type FeeServiceInterface interface {
	RecordFee(ctx context.Context, schoolID uuid.UUID, request request_models.CreateFeeRequest) (*db_models.FeeRecord, error)
	ListFeesByStudent(ctx context.Context, schoolID, studentID string) ([]db_models.FeeRecord, error)
	CollectFee(ctx context.Context, schoolID, id, mode string) error
}

type VehicleServiceInterface interface {
	AddVehicle(ctx context.Context, schoolID uuid.UUID, request request_models.CreateVehicleRequest) (*db_models.Vehicle, error)
	ListVehicles(ctx context.Context, schoolID string) ([]db_models.Vehicle, error)
	DeleteVehicle(ctx context.Context, schoolID, id string) error
}

type EventServiceInterface interface {
	CreateEvent(ctx context.Context, schoolID uuid.UUID, request request_models.CreateEventRequest) (*db_models.Event, error)
	ListEvents(ctx context.Context, schoolID string) ([]db_models.Event, error)
	DeleteEvent(ctx context.Context, schoolID, id string) error
}

type NoticeService struct {
	noticeRepo repositories.NoticeRepository
}

func NewNoticeService(noticeRepo repositories.NoticeRepository) NoticeServiceInterface {
	return &NoticeService{noticeRepo: noticeRepo}
}

func (s *NoticeService) PublishNotice(ctx context.Context, schoolID uuid.UUID, request request_models.CreateNoticeRequest) (*db_models.Notice, error) {
	audience := request.Audience
	if audience == "" {
		audience = "all"
	}

	notice := &db_models.Notice{
		SchoolID:    schoolID,
		Title:       request.Title,
		Body:        request.Body,
		Audience:    audience,
		PublishedAt: utils.NowUnixSeconds(),
	}

	if err := s.noticeRepo.Insert(ctx, notice); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return notice, nil
}

func (s *NoticeService) ListNotices(ctx context.Context, schoolID string) ([]db_models.Notice, error) {
	notices, err := s.noticeRepo.ListBySchool(ctx, schoolID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return notices, nil
}

func (s *NoticeService) DeleteNotice(ctx context.Context, schoolID, id string) error {
	if err := s.noticeRepo.Delete(ctx, schoolID, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

type HomeworkService struct {
	homeworkRepo repositories.HomeworkRepository
}

func NewHomeworkService(homeworkRepo repositories.HomeworkRepository) HomeworkServiceInterface {
	return &HomeworkService{homeworkRepo: homeworkRepo}
}

func (s *HomeworkService) AssignHomework(ctx context.Context, schoolID uuid.UUID, request request_models.CreateHomeworkRequest) (*db_models.Homework, error) {
	hw := &db_models.Homework{
		SchoolID:    schoolID,
		Subject:     request.Subject,
		Title:       request.Title,
		Description: request.Description,
		DueAt:       request.DueAt,
	}
	if request.ClassID != "" {
		if classID, err := uuid.Parse(request.ClassID); err == nil {
			hw.ClassID = &classID
		}
	}

	if err := s.homeworkRepo.Insert(ctx, hw); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return hw, nil
}

func (s *HomeworkService) ListHomework(ctx context.Context, schoolID string) ([]db_models.Homework, error) {
	homework, err := s.homeworkRepo.ListBySchool(ctx, schoolID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return homework, nil
}

func (s *HomeworkService) DeleteHomework(ctx context.Context, schoolID, id string) error {
	if err := s.homeworkRepo.Delete(ctx, schoolID, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

type FeeService struct {
	feeRepo     repositories.FeeRepository
	studentRepo repositories.StudentRepository
}

func NewFeeService(feeRepo repositories.FeeRepository, studentRepo repositories.StudentRepository) FeeServiceInterface {
	return &FeeService{
		feeRepo:     feeRepo,
		studentRepo: studentRepo,
	}
}

func (s *FeeService) RecordFee(ctx context.Context, schoolID uuid.UUID, request request_models.CreateFeeRequest) (*db_models.FeeRecord, error) {
	student, err := s.studentRepo.FindById(ctx, schoolID.String(), request.StudentID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if student == nil {
		return nil, utils.ErrRecordNotFound
	}

	fee := &db_models.FeeRecord{
		SchoolID:  schoolID,
		StudentID: student.ID,
		Period:    request.Period,
		Amount:    request.Amount,
		Status:    db_models.FeeStatusUnpaid,
	}

	if err := s.feeRepo.Insert(ctx, fee); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return fee, nil
}

func (s *FeeService) ListFeesByStudent(ctx context.Context, schoolID, studentID string) ([]db_models.FeeRecord, error) {
	fees, err := s.feeRepo.ListByStudent(ctx, schoolID, studentID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return fees, nil
}

func (s *FeeService) CollectFee(ctx context.Context, schoolID, id, mode string) error {
	if err := s.feeRepo.MarkPaid(ctx, schoolID, id, mode, utils.NowUnixSeconds()); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

type VehicleService struct {
	vehicleRepo repositories.VehicleRepository
}

func NewVehicleService(vehicleRepo repositories.VehicleRepository) VehicleServiceInterface {
	return &VehicleService{vehicleRepo: vehicleRepo}
}

func (s *VehicleService) AddVehicle(ctx context.Context, schoolID uuid.UUID, request request_models.CreateVehicleRequest) (*db_models.Vehicle, error) {
	vehicle := &db_models.Vehicle{
		SchoolID:       schoolID,
		RegistrationNo: request.RegistrationNo,
		DriverName:     request.DriverName,
		DriverPhone:    request.DriverPhone,
		Route:          request.Route,
		Capacity:       request.Capacity,
	}

	if err := s.vehicleRepo.Insert(ctx, vehicle); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return vehicle, nil
}

func (s *VehicleService) ListVehicles(ctx context.Context, schoolID string) ([]db_models.Vehicle, error) {
	vehicles, err := s.vehicleRepo.ListBySchool(ctx, schoolID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return vehicles, nil
}

func (s *VehicleService) DeleteVehicle(ctx context.Context, schoolID, id string) error {
	if err := s.vehicleRepo.Delete(ctx, schoolID, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

type EventService struct {
	eventRepo repositories.EventRepository
}

func NewEventService(eventRepo repositories.EventRepository) EventServiceInterface {
	return &EventService{eventRepo: eventRepo}
}

func (s *EventService) CreateEvent(ctx context.Context, schoolID uuid.UUID, request request_models.CreateEventRequest) (*db_models.Event, error) {
	event := &db_models.Event{
		SchoolID:    schoolID,
		Title:       request.Title,
		Description: request.Description,
		Venue:       request.Venue,
		StartsAt:    request.StartsAt,
		EndsAt:      request.EndsAt,
	}

	if err := s.eventRepo.Insert(ctx, event); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return event, nil
}

func (s *EventService) ListEvents(ctx context.Context, schoolID string) ([]db_models.Event, error) {
	events, err := s.eventRepo.ListBySchool(ctx, schoolID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return events, nil
}

func (s *EventService) DeleteEvent(ctx context.Context, schoolID, id string) error {
	if err := s.eventRepo.Delete(ctx, schoolID, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
