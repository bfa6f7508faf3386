package repository

// 持久化网关 key 约定
// 所有患者数据都挂在扁平 KV 空间下，按患者 ID 拼 key
const (
	vitalsKeyPrefix   = "patient_vitals_"
	alertsKeyPrefix   = "patient_alerts_"
	infoKeyPrefix     = "patient_info_"
	contactsKeyPrefix = "patient_contacts_"
)

func vitalsKey(patientID string) string   { return vitalsKeyPrefix + patientID }
func alertsKey(patientID string) string   { return alertsKeyPrefix + patientID }
func infoKey(patientID string) string     { return infoKeyPrefix + patientID }
func contactsKey(patientID string) string { return contactsKeyPrefix + patientID }
