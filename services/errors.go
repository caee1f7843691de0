package services

import (
	"errors"
	"fmt"
	"time"

	"carbooking/database"
	"carbooking/models"
)

// ErrNotFound 查無資料：回給呼叫端，不重試也不致命
var ErrNotFound = errors.New("record not found")

// ValidationError 欄位驗證失敗：資料庫不會被改動
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InvalidDateError 日期字串無法解析：一律往上傳，不靜默略過
type InvalidDateError struct {
	Value string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q: must be in %s format", e.Value, models.DateLayout)
}

// wrapDuplicatePlate 後端撞到車牌唯一索引時轉成驗證錯誤
func wrapDuplicatePlate(err error, msg string) error {
	if errors.Is(err, database.ErrDuplicatePlate) {
		return &ValidationError{Field: "plate", Reason: "plate is already in use"}
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// parseDate 解析 YYYY-MM-DD 日期字串
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return time.Time{}, &InvalidDateError{Value: s}
	}
	return t, nil
}
