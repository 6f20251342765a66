package model

import "time"

// PublicData maps the portal export table. Column names are kept exactly as
// the data.go.kr CSV dump delivers them (Korean headers), so the seeder can
// load the file without a translation layer.
type PublicData struct {
	PublicDataPk         int64      `gorm:"column:공공데이터pk;primaryKey"`
	FileDataName         string     `gorm:"column:파일데이터명;not null;uniqueIndex"`
	Title                string     `gorm:"column:제목;not null"`
	ClassificationSystem string     `gorm:"column:분류체계"`
	ProviderAgency       string     `gorm:"column:제공기관"`
	FileExtension        string     `gorm:"column:확장자"`
	Keywords             string     `gorm:"column:키워드"`
	ModifiedDate         *time.Time `gorm:"column:수정일"`
	Description          string     `gorm:"column:설명;type:text"`
}

func (PublicData) TableName() string {
	return "file_data"
}
