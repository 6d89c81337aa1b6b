package stub

import "github.com/KasumiMercury/primind-learning-planner/internal/infra/optimizer"

type RequestsResponse struct {
	Requests []*optimizer.Request `json:"requests"`
	Count    int                  `json:"count"`
}

// FailureRequest makes the next optimize calls of a run answer with Status.
type FailureRequest struct {
	Status int `json:"status" binding:"required,min=400,max=599"`
	Count  int `json:"count" binding:"min=0"`
}
