package dto

import (
	"github.com/google/uuid"

	"charter/internal/domains/template/model"
	"charter/shared"
	gDto "charter/shared/dto"
	gModel "charter/shared/model"
	"charter/shared/timezone"
)

type CreateTemplateRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Type    string `json:"type"    validate:"required,oneof=Accepted Rejected"`
	Subject string `json:"subject" validate:"required,max=200"`
	Body    string `json:"body"    validate:"required"`
}

func (c *CreateTemplateRequest) ToModel(createdBy string) model.EmailTemplate {
	return model.EmailTemplate{
		ID:      uuid.NewString(),
		Name:    c.Name,
		Type:    c.Type,
		Subject: c.Subject,
		Body:    c.Body,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  createdBy,
			ModifiedBy: createdBy,
		},
	}
}

type UpdateTemplateRequest struct {
	Name    string `db:"name"    json:"name"    validate:"omitempty,max=100"`
	Subject string `db:"subject" json:"subject" validate:"omitempty,max=200"`
	Body    string `db:"body"    json:"body"    validate:"omitempty"`
}

type TemplateResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	gDto.Metadata
}

func (r *TemplateResponse) FromModel(mod model.EmailTemplate) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Type = mod.Type
	r.Subject = mod.Subject
	r.Body = mod.Body
	r.Metadata.FromModel(mod.Metadata)
}

type GetTemplatesResponse struct {
	Templates []TemplateResponse `json:"templates"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetTemplatesResponse) FromModels(models []model.EmailTemplate, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Templates = make([]TemplateResponse, len(models))
	for i, mod := range models {
		r.Templates[i].FromModel(mod)
	}
}
