package model

type Verb struct {
	ID             int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Infinitive     string `gorm:"not null;index:idx_verbs_infinitive" json:"infinitive"`
	PastSimple     string `gorm:"not null" json:"past_simple"`
	PastParticiple string `gorm:"not null" json:"past_participle"`
	French         string `gorm:"not null;index:idx_verbs_french" json:"french"`
}

func (Verb) TableName() string {
	return "verbs"
}
