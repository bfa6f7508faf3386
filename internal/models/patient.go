package models

// PatientInfo 患者档案（由外部患者管理功能写入，本服务只读）
type PatientInfo struct {
	PatientID string `json:"patientId"`
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
}

// EmergencyContact 紧急联系人（由外部患者管理功能写入，本服务只读）
type EmergencyContact struct {
	Name                string `json:"name"`
	Relationship        string `json:"relationship"`
	Phone               string `json:"phone"`
	NotificationEnabled bool   `json:"notificationEnabled"`
}
