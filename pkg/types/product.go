// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// RawRow holds one source row, one cell per catalog column. A cell the
// sheet leaves blank is an empty Cell.
type RawRow struct {
	Name        Cell // Полное наименование
	Type        Cell // Тип
	Axis        Cell // Ось
	Brand       Cell // Бренд
	Model       Cell // Модель
	Width       Cell // Ширина профиля
	Height      Cell // Высота профиля
	Diameter    Cell // Диаметр
	LoadIndex   Cell // Индекс нагрузки / скорости
	Price       Cell // Цена
	Description Cell // Описание
	SEO         Cell // SEO
	Images      Cell // Изображения
}

// ProductRecord is one exported catalog entry. Field order matches the key
// order the front-end expects. Optional fields are Values so a missing
// source cell surfaces as null rather than an omitted key.
type ProductRecord struct {
	ID          int      `json:"id" yaml:"id"`
	Name        Value    `json:"name" yaml:"name"`
	Slug        string   `json:"slug" yaml:"slug"`
	Category    Value    `json:"category" yaml:"category"`
	Subcategory Value    `json:"subcategory" yaml:"subcategory"`
	Brand       Value    `json:"brand" yaml:"brand"`
	Model       Value    `json:"model" yaml:"model"`
	Width       Value    `json:"width" yaml:"width"`
	Height      Value    `json:"height" yaml:"height"`
	Diameter    Value    `json:"diameter" yaml:"diameter"`
	LoadIndex   Value    `json:"load_index" yaml:"load_index"`
	Price       Value    `json:"price" yaml:"price"`
	Description Value    `json:"description" yaml:"description"`
	SEOKeywords Value    `json:"seoKeywords" yaml:"seoKeywords"`
	Images      []string `json:"images" yaml:"images"`
	Specs       Specs    `json:"specs" yaml:"specs"`
}

// Specs duplicates a subset of the physical attributes for consumers that
// render a specification table.
type Specs struct {
	Width     Value `json:"width" yaml:"width"`
	Height    Value `json:"height" yaml:"height"`
	Diameter  Value `json:"diameter" yaml:"diameter"`
	LoadIndex Value `json:"load_index" yaml:"load_index"`
	Type      Value `json:"type" yaml:"type"`
	Axis      Value `json:"axis" yaml:"axis"`
}
