package makespan

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
	"gorm.io/gorm"
)

var (
	BinaryMarshalFunc   = msgpack.Marshal
	BinaryUnmarshalFunc = msgpack.Unmarshal
)

var _ ScheduleRepository = (*ScheduleDBRepository)(nil)

type ScheduleEntity struct {
	ID         string `gorm:"primaryKey"`
	Policy     string
	Jobs       []byte
	CreateTime int64
	UpdateTime int64
	FinishTime int64
}

func (ScheduleEntity) TableName() string {
	return ScheduleTableName
}

type ScheduleDBRepository struct {
	db *gorm.DB
}

func NewScheduleDBRepository(db *gorm.DB) ScheduleDBRepository {
	return ScheduleDBRepository{db: db}
}

func (r ScheduleDBRepository) Find(ctx context.Context, id ScheduleID) (m Schedule, err error) {
	e := ScheduleEntity{}
	err = r.db.WithContext(ctx).Where("id = ?", id.String()).First(&e).Error
	if err != nil {
		return
	}
	return ScheduleEntityConverter{}.ToModel(e)
}

func (r ScheduleDBRepository) Save(ctx context.Context, m *Schedule) (err error) {
	_, err = r.Find(ctx, m.ID)
	if isRecordNotFound(err) {
		return r.create(ctx, m)
	} else if err != nil {
		return err
	}
	return r.update(ctx, m)
}

func (r ScheduleDBRepository) create(ctx context.Context, m *Schedule) (err error) {
	e, err := ScheduleEntityConverter{}.ToEntity(m)
	if err != nil {
		return
	}
	return r.db.WithContext(ctx).Create(&e).Error
}

func (r ScheduleDBRepository) update(ctx context.Context, m *Schedule) (err error) {
	e, err := ScheduleEntityConverter{}.ToEntity(m)
	if err != nil {
		return
	}

	oldUpdateTime := e.UpdateTime
	e.UpdateTime = requestNewUpdateTime(e.UpdateTime)

	res := r.db.WithContext(ctx).
		Model(&e).
		Select("*").
		Where("id = ?", e.ID).
		Where("update_time = ?", oldUpdateTime).
		Updates(e)

	if err = res.Error; err != nil {
		return
	}

	if res.RowsAffected == 0 {
		return errors.Errorf("Update schedule %s conflicts at version %d",
			e.ID, e.UpdateTime)
	}

	m.UpdateTime = ParseTimestamp(e.UpdateTime)

	return
}

type ScheduleEntityConverter struct {
}

func (c ScheduleEntityConverter) ToEntity(m *Schedule) (e ScheduleEntity, err error) {
	jobs, err := BinaryMarshalFunc(m.Jobs)
	if err != nil {
		return
	}
	return ScheduleEntity{
		ID:         m.ID.String(),
		Policy:     string(m.Policy),
		Jobs:       jobs,
		CreateTime: m.CreateTime.Value(),
		UpdateTime: m.UpdateTime.Value(),
		FinishTime: m.FinishTime.Value(),
	}, nil
}

func (c ScheduleEntityConverter) ToModel(e ScheduleEntity) (m Schedule, err error) {
	id, err := ParseScheduleID(e.ID)
	if err != nil {
		return
	}

	policy, err := ParsePolicy(e.Policy)
	if err != nil {
		return
	}

	var jobs []Job
	err = BinaryUnmarshalFunc(e.Jobs, &jobs)
	if err != nil {
		return
	}

	return Schedule{
		ID:         id,
		Policy:     policy,
		Jobs:       jobs,
		CreateTime: ParseTimestamp(e.CreateTime),
		UpdateTime: ParseTimestamp(e.UpdateTime),
		FinishTime: ParseTimestamp(e.FinishTime),
	}, nil
}
