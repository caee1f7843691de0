package services

import (
	"time"

	"carbooking/database"
)

// Service 核心業務邏輯：可用性計算、過期掃描、統計與客戶彙整。
// 儲存後端由外部注入，方便測試時換成獨立的記憶體實例。
type Service struct {
	store database.Store

	// nowFunc 取得系統時間，測試時可固定
	nowFunc func() time.Time
}

func New(store database.Store) *Service {
	return &Service{
		store:   store,
		nowFunc: time.Now,
	}
}

// today 取得今天的日曆日期（截掉時分秒）
func (s *Service) today() time.Time {
	now := s.nowFunc()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
