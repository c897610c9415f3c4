package crorepati

import "github.com/crorepati-games/crorepati/internal/database"

type Config struct {
	// Logging all engine activity at debug level
	Debug bool `envconfig:"CRP_DEBUG" default:"false"`

	// Number of items in the question-variation cache
	CacheSize int `envconfig:"CRP_CACHE_SIZE" default:"1024"`

	// Upper bound on teams at the setup screen
	MaxTeams int `envconfig:"CRP_MAX_TEAMS" default:"6"`

	// Length of the phone-a-friend and ask-your-team dialog timers
	LifelineSeconds int `envconfig:"CRP_LIFELINE_SECONDS" default:"30"`

	// Chance in [0,1] that a drawn question is reworded by the optional
	// variation collaborator. Zero disables the enrichment.
	VariationChance float64 `envconfig:"CRP_VARIATION_CHANCE" default:"0"`

	Db database.Config
}
