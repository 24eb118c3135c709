package estimator

import "strings"

type Language string

const (
	English Language = "en"
	Thai    Language = "th"
)

type catalog struct {
	validation  string
	httpStatus  string
	missingData string
	transport   string
	unknown     string
}

var catalogs = map[Language]catalog{
	English: {
		validation:  "please complete all fields",
		httpStatus:  "error occurred: HTTP error! status: %d",
		missingData: "salary not received from the API",
		transport:   "cannot connect to the server; check that the API server is running",
		unknown:     "error occurred: %s",
	},
	Thai: {
		validation:  "กรุณากรอกข้อมูลให้ครบถ้วน",
		httpStatus:  "เกิดข้อผิดพลาด: HTTP error! status: %d",
		missingData: "ไม่ได้รับข้อมูลเงินเดือนจาก API",
		transport:   "ไม่สามารถเชื่อมต่อกับเซิร์ฟเวอร์ได้ กรุณาตรวจสอบว่า API server ทำงานอยู่",
		unknown:     "เกิดข้อผิดพลาด: %s",
	},
}

// ParseLanguage maps a user supplied value to a supported language,
// falling back to English.
func ParseLanguage(value string) Language {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "th", "th-th", "thai":
		return Thai
	default:
		return English
	}
}

func catalogFor(lang Language) catalog {
	if c, ok := catalogs[lang]; ok {
		return c
	}
	return catalogs[English]
}
