package domain

import "time"

const (
	SettingTeamNotice        = "team_notice"
	SettingTeamNoticeVisible = "team_notice_visible"
	SettingTaxRate           = "tax_rate"
)

type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TeamNotice struct {
	Text    string `json:"text"`
	Visible bool   `json:"visible"`
}

type UpsertSettingRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
