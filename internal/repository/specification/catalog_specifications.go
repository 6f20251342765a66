package specification

import (
	"strings"

	"gorm.io/gorm"
)

// Catalog specifications query the file_data table by its Korean portal
// columns. All "contains" lookups are case-insensitive (ILIKE).

type ByFileDataName struct {
	Name string
}

func (s ByFileDataName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("파일데이터명 = ?", s.Name)
}

type FileDataNameContains struct {
	Term string
}

func (s FileDataNameContains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("파일데이터명 ILIKE ?", like(s.Term))
}

type TitleContains struct {
	Term string
}

func (s TitleContains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("제목 ILIKE ?", like(s.Term))
}

type KeywordsContains struct {
	Term string
}

func (s KeywordsContains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("키워드 ILIKE ?", like(s.Term))
}

type ProviderAgencyContains struct {
	Term string
}

func (s ProviderAgencyContains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("제공기관 ILIKE ?", like(s.Term))
}

type DescriptionContains struct {
	Term string
}

func (s DescriptionContains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("설명 ILIKE ?", like(s.Term))
}

type ClassificationContains struct {
	Term string
}

func (s ClassificationContains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("분류체계 ILIKE ?", like(s.Term))
}

// like escapes the LIKE wildcards inside a user term before wrapping it.
func like(term string) string {
	term = strings.ReplaceAll(term, `\`, `\\`)
	term = strings.ReplaceAll(term, "%", `\%`)
	term = strings.ReplaceAll(term, "_", `\_`)
	return "%" + term + "%"
}
