package domain

import (
	"encoding/json"
	"time"
)

type AuditAction string

const (
	AuditInsert    AuditAction = "INSERT"
	AuditUpdate    AuditAction = "UPDATE"
	AuditDelete    AuditAction = "DELETE"
	AuditLogin     AuditAction = "LOGIN"
	AuditLogout    AuditAction = "LOGOUT"
	AuditClearLogs AuditAction = "CLEAR_LOGS"
)

// AuditRecentLimit é a quantidade de registros exibidos no histórico
const AuditRecentLimit = 100

type AuditLogEntry struct {
	ID        string          `json:"id"`
	Action    AuditAction     `json:"action"`
	TableName string          `json:"table_name"`
	RecordID  *string         `json:"record_id"`
	OldValues json.RawMessage `json:"old_values"`
	NewValues json.RawMessage `json:"new_values"`
	UserID    *string         `json:"user_id"`
	CreatedAt time.Time       `json:"created_at"`

	UserName  string `json:"user_name,omitempty"`
	UserEmail string `json:"user_email,omitempty"`
}

type ClearAuditLogsResponse struct {
	DeletedCount int `json:"deleted_count"`
}
