package game

// Attributes are the eleven primary stats. They are computed once when a
// character is constructed (race base plus class modifier) and never
// re-derived afterwards.
type Attributes struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Agility      int `json:"agility"`
	Constitution int `json:"constitution"`
	Stamina      int `json:"stamina"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Willpower    int `json:"willpower"`
	Charisma     int `json:"charisma"`
	Perception   int `json:"perception"`
	Luck         int `json:"luck"`
}

// Add returns the field-wise sum of a and b.
func (a Attributes) Add(b Attributes) Attributes {
	return Attributes{
		Strength:     a.Strength + b.Strength,
		Dexterity:    a.Dexterity + b.Dexterity,
		Agility:      a.Agility + b.Agility,
		Constitution: a.Constitution + b.Constitution,
		Stamina:      a.Stamina + b.Stamina,
		Intelligence: a.Intelligence + b.Intelligence,
		Wisdom:       a.Wisdom + b.Wisdom,
		Willpower:    a.Willpower + b.Willpower,
		Charisma:     a.Charisma + b.Charisma,
		Perception:   a.Perception + b.Perception,
		Luck:         a.Luck + b.Luck,
	}
}

// SecondaryAttributes are derived from level, race/class base health, and the
// primary attributes. CurrentHealth may go transiently negative inside a
// single attack resolution before the death outcome is reported.
type SecondaryAttributes struct {
	CurrentHealth            int     `json:"current_health"`
	MaxHealth                int     `json:"max_health"`
	AttackDamage             int     `json:"attack_damage"`
	AttackDelaySeconds       float64 `json:"attack_delay_seconds"`
	CurrentExperience        int     `json:"current_experience"`
	ExperienceUntilNextLevel int     `json:"experience_until_next_level"`
}

const (
	minAttackDelaySeconds = 2.0
	baseAttackDelay       = 8.0
	experiencePerLevel    = 1000
)

// DeriveSecondary computes secondary attributes for a fresh character at full
// health.
func DeriveSecondary(level int, race *Race, class *CharacterClass, attrs Attributes) SecondaryAttributes {
	maxHealth := race.BaseHealth + class.BaseHealth + attrs.Constitution*level

	delay := baseAttackDelay - float64(attrs.Agility)/10
	if delay < minAttackDelaySeconds {
		delay = minAttackDelaySeconds
	}

	return SecondaryAttributes{
		CurrentHealth:            maxHealth,
		MaxHealth:                maxHealth,
		AttackDamage:             attrs.Strength/2 + level,
		AttackDelaySeconds:       delay,
		CurrentExperience:        0,
		ExperienceUntilNextLevel: level * experiencePerLevel,
	}
}
