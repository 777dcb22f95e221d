package model

// DashboardStats feeds the admin overview cards and category chart.
type DashboardStats struct {
	Projects           int                     `json:"projects"`
	Clients            int                     `json:"clients"`
	Contacts           int                     `json:"contacts"`
	Subscribers        int                     `json:"subscribers"`
	ProjectsByCategory map[ProjectCategory]int `json:"projectsByCategory"`
}
