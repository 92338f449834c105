// file: internals/features/progress/model/connection_session_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ConnectionSessionModel: akumulasi menit koneksi per (student, hari).
// Sumber seri aktivitas mingguan (7 hari, zero-filled).
type ConnectionSessionModel struct {
	ConnectionSessionID        uint      `gorm:"column:connection_session_id;primaryKey" json:"connection_session_id"`
	ConnectionSessionStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_connection_sessions_student_day,priority:1;column:connection_session_student_id" json:"connection_session_student_id"`
	ConnectionSessionDay       time.Time `gorm:"type:date;not null;uniqueIndex:uq_connection_sessions_student_day,priority:2;column:connection_session_day" json:"connection_session_day"`

	ConnectionSessionMinutes int `gorm:"not null;default:0;column:connection_session_minutes" json:"connection_session_minutes"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ConnectionSessionModel) TableName() string { return "connection_sessions" }
