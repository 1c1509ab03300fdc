package merchant

import "fmt"

// Merchant represents a participating merchant on the event map.
type Merchant struct {
	MerchantID      string  `json:"merchant_id"`
	MerchantName    string  `json:"merchant_name"`
	MerchantAddress string  `json:"merchant_address"`
	MerchantLat     float64 `json:"merchant_lat"`
	MerchantLon     float64 `json:"merchant_lng"`

	Category   string `json:"category,omitempty"`
	GroupID    string `json:"group_id,omitempty"`
	VisitCount int    `json:"visit_count,omitempty"`

	// WeeklySchedule maps a day key ("sunday".."saturday") to either the
	// "closed" sentinel or a comma separated range list like
	// "09:00-13:00,17:00-20:00".
	WeeklySchedule WeeklySchedule `json:"weekly_schedule,omitempty"`
}

func (m *Merchant) ToString() string {
	return fmt.Sprintf("Merchant(name=%s, address=%s, lat=%f, lon=%f)",
		m.MerchantName, m.MerchantAddress, m.MerchantLat, m.MerchantLon)
}
