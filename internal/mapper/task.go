package mapper

import (
	"gin-gorm-todolist/internal/domain"
	"gin-gorm-todolist/internal/dto"
)

func ToTaskResponse(t *domain.Task) *dto.TaskResponse {
	if t == nil {
		return nil
	}
	return &dto.TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		UserID:      t.UserID,
	}
}

func ToTaskResponses(ts []domain.Task) []dto.TaskResponse {
	out := make([]dto.TaskResponse, 0, len(ts))
	for i := range ts {
		out = append(out, *ToTaskResponse(&ts[i]))
	}
	return out
}

// ToTaskEntity 只搬字段，owner 是否存在由 service 校验
func ToTaskEntity(req *dto.TaskRequest) *domain.Task {
	if req == nil {
		return nil
	}
	return &domain.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		UserID:      req.UserID,
	}
}
