package handlers

import "carbooking/services"

// Handler 持有注入的 Service，不使用全域狀態
type Handler struct {
	Svc *services.Service
}

func New(svc *services.Service) *Handler {
	return &Handler{Svc: svc}
}
