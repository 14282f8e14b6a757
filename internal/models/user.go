package models

import "time"

type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
	SkillElite        SkillLevel = "elite"
)

type User struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	SkillLevel      SkillLevel `json:"skill_level"`
	Goals           []string   `json:"goals,omitempty"`
	WeeklyFrequency int        `json:"weekly_frequency"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
