package makespan

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var _ EvaluationRepository = (*EvaluationDBRepository)(nil)

type EvaluationEntity struct {
	ID            string `gorm:"primaryKey"`
	ScheduleID    string
	Makespan      float64
	MachineFinish []byte
	CreateTime    int64
	UpdateTime    int64
	FinishTime    int64
}

func (EvaluationEntity) TableName() string {
	return EvaluationTableName
}

type EvaluationDBRepository struct {
	db *gorm.DB
}

func NewEvaluationDBRepository(db *gorm.DB) EvaluationDBRepository {
	return EvaluationDBRepository{db: db}
}

func (r EvaluationDBRepository) Find(ctx context.Context, id EvaluationID) (m Evaluation, err error) {
	e := EvaluationEntity{}
	err = r.db.WithContext(ctx).Where("id = ?", id.String()).First(&e).Error
	if err != nil {
		return
	}
	return EvaluationEntityConverter{}.ToModel(e)
}

func (r EvaluationDBRepository) Save(ctx context.Context, m *Evaluation) (err error) {
	_, err = r.Find(ctx, m.ID)
	if isRecordNotFound(err) {
		return r.create(ctx, m)
	} else if err != nil {
		return err
	}
	return r.update(ctx, m)
}

func (r EvaluationDBRepository) create(ctx context.Context, m *Evaluation) (err error) {
	e, err := EvaluationEntityConverter{}.ToEntity(m)
	if err != nil {
		return
	}
	return r.db.WithContext(ctx).Create(&e).Error
}

func (r EvaluationDBRepository) update(ctx context.Context, m *Evaluation) (err error) {
	e, err := EvaluationEntityConverter{}.ToEntity(m)
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
		return errors.Errorf("Update evaluation %s conflicts at version %d",
			e.ID, e.UpdateTime)
	}

	m.UpdateTime = ParseTimestamp(e.UpdateTime)

	return
}

type EvaluationEntityConverter struct {
}

func (c EvaluationEntityConverter) ToEntity(m *Evaluation) (e EvaluationEntity, err error) {
	finishes, err := BinaryMarshalFunc(m.MachineFinish)
	if err != nil {
		return
	}
	return EvaluationEntity{
		ID:            m.ID.String(),
		ScheduleID:    m.ScheduleID.String(),
		Makespan:      m.Makespan,
		MachineFinish: finishes,
		CreateTime:    m.CreateTime.Value(),
		UpdateTime:    m.UpdateTime.Value(),
		FinishTime:    m.FinishTime.Value(),
	}, nil
}

func (c EvaluationEntityConverter) ToModel(e EvaluationEntity) (m Evaluation, err error) {
	id, err := ParseEvaluationID(e.ID)
	if err != nil {
		return
	}

	scheduleID, err := ParseScheduleID(e.ScheduleID)
	if err != nil {
		return
	}

	finishes := map[MachineID]float64{}
	err = BinaryUnmarshalFunc(e.MachineFinish, &finishes)
	if err != nil {
		return
	}

	return Evaluation{
		ID:            id,
		ScheduleID:    scheduleID,
		Makespan:      e.Makespan,
		MachineFinish: finishes,
		CreateTime:    ParseTimestamp(e.CreateTime),
		UpdateTime:    ParseTimestamp(e.UpdateTime),
		FinishTime:    ParseTimestamp(e.FinishTime),
	}, nil
}
