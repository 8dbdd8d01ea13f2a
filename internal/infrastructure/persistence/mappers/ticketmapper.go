package mappers

import (
	"time"

	"deskline/internal/domain/ticket"
	vo "deskline/internal/domain/ticket/valueobjects"
	"deskline/internal/infrastructure/persistence/models"
	"deskline/internal/shared/utils/jsonutil"
)

// TicketMapper handles the conversion between Ticket domain entities and
// persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	LogToModel(e *ticket.LogEntry) *models.TicketLogModel
	LogToDomain(model *models.TicketLogModel) (*ticket.LogEntry, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status().String(),
		Priority:    t.Priority().String(),
		AgentID:     t.AgentID(),
		Tags:        jsonutil.StringSliceToJSON(t.Tags()),
		CreatedAt:   t.CreatedAt().UnixMilli(),
		UpdatedAt:   t.UpdatedAt().UnixMilli(),
	}

	return model
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	tags := jsonutil.JSONToStringSlice(model.Tags)

	return ticket.ReconstructTicket(
		model.ID,
		model.Title,
		model.Description,
		vo.TicketStatus(model.Status),
		vo.Priority(model.Priority),
		model.AgentID,
		tags,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
}

func (m *TicketMapperImpl) LogToModel(e *ticket.LogEntry) *models.TicketLogModel {
	return &models.TicketLogModel{
		ID:        e.ID(),
		TicketID:  e.TicketID(),
		Action:    e.Action(),
		From:      e.From().String(),
		To:        e.To().String(),
		Comment:   e.Comment(),
		CreatedAt: e.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) LogToDomain(model *models.TicketLogModel) (*ticket.LogEntry, error) {
	return ticket.ReconstructLogEntry(
		model.ID,
		model.TicketID,
		model.Action,
		vo.TicketStatus(model.From),
		vo.TicketStatus(model.To),
		model.Comment,
		time.UnixMilli(model.CreatedAt).UTC(),
	)
}
