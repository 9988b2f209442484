package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`

	// two-level tree: parent categories have ParentID = nil
	ParentID *uint      `json:"parentId"`
	Parent   *Category  `json:"-"`
	Children []Category `gorm:"foreignKey:ParentID" json:"children,omitempty"`

	SortOrder int `json:"sortOrder"`

	// No column default here: gorm would treat an explicit false as "unset"
	// on insert and write the default instead. Writers set the flag.
	ShowInNav bool `json:"showInNav"`

	Products []Product `json:"-"`
}
