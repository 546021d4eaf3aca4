package entity

import (
	"time"

	"github.com/google/uuid"
)

// Medicine is a catalog entry, looked up during prescribing or created ad hoc
type Medicine struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"type:varchar(255);not null;index" json:"name"`
	GenericName  string     `gorm:"type:varchar(255);index" json:"generic_name,omitempty"`
	Brand        string     `gorm:"type:varchar(255)" json:"brand,omitempty"`
	Strength     string     `gorm:"type:varchar(100)" json:"strength,omitempty"`
	Form         string     `gorm:"type:varchar(100)" json:"form,omitempty"`
	Manufacturer string     `gorm:"type:varchar(255)" json:"manufacturer,omitempty"`
	Schedule     string     `gorm:"type:varchar(50)" json:"schedule,omitempty"`
	IsActive     *bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedBy    *uuid.UUID `gorm:"type:uuid" json:"created_by,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Medicine) TableName() string {
	return "medicines"
}
