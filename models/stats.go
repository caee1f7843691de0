package models

// DashboardStats 儀表板統計：同樣的輸入和日期必定算出同樣的結果
type DashboardStats struct {
	TotalCars      int `json:"total_cars"`      // 全部車輛數（含維修中）
	RentedToday    int `json:"rented_today"`    // 今天出租中的訂單數
	RevenueToday   int `json:"revenue_today"`   // 今天出租中訂單的總金額
	MonthlyRevenue int `json:"monthly_revenue"` // 本月結束的已完成訂單總金額
}
