package config

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	bettererrors "github.com/xtuc/better-errors"

	"github.com/botarena/botarena/game/bot"
)

// ArenaConfig describes one simulation run.
type ArenaConfig struct {
	Arena       ArenaSettings      `mapstructure:"arena"`
	Bot         BotSettings        `mapstructure:"bot"`
	Projectiles []ProjectileConfig `mapstructure:"projectiles"`
	Teams       []TeamConfig       `mapstructure:"teams"`
	Obstacles   []ObstacleConfig   `mapstructure:"obstacles"`
	CrouchZones []ObstacleConfig   `mapstructure:"crouchZones"`
	Pickups     []PickupConfig     `mapstructure:"pickups"`
	Behavior    BehaviorSettings   `mapstructure:"behavior"`
	Log         LogSettings        `mapstructure:"log"`
}

type ArenaSettings struct {
	Name   string  `mapstructure:"name"`
	Tps    int     `mapstructure:"tps"`
	Ticks  int     `mapstructure:"ticks"`
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
	Seed   int64   `mapstructure:"seed"`
}

type BotSettings struct {
	MaxHealth            float64 `mapstructure:"maxHealth"`
	RetreatThreshold     float64 `mapstructure:"retreatThreshold"`
	DestroyDelay         float64 `mapstructure:"destroyDelay"`
	StartAmmo            int     `mapstructure:"startAmmo"`
	MaxAmmo              int     `mapstructure:"maxAmmo"`
	AmmoAddCeiling       int     `mapstructure:"ammoAddCeiling"`
	LowAmmoThreshold     int     `mapstructure:"lowAmmoThreshold"`
	FireDelay            float64 `mapstructure:"fireDelay"`
	FireEffectDuration   float64 `mapstructure:"fireEffectDuration"`
	SelectTargetInterval float64 `mapstructure:"selectTargetInterval"`
	TurnSpeed            float64 `mapstructure:"turnSpeed"`
	PickupSearchRadius   float64 `mapstructure:"pickupSearchRadius"`
	PickupReach          float64 `mapstructure:"pickupReach"`
	VisionRadius         float64 `mapstructure:"visionRadius"`
	VisionAngle          float64 `mapstructure:"visionAngle"`
	Radius               float64 `mapstructure:"radius"`
	MaxSpeed             float64 `mapstructure:"maxSpeed"`
	ProjectileTemplate   string  `mapstructure:"projectileTemplate"`
}

type ProjectileConfig struct {
	Name   string  `mapstructure:"name"`
	Damage float64 `mapstructure:"damage"`
	Range  float64 `mapstructure:"range"`
}

type PointConfig struct {
	X float64 `mapstructure:"x"`
	Y float64 `mapstructure:"y"`
}

type TeamConfig struct {
	Team   string      `mapstructure:"team"`
	Count  int         `mapstructure:"count"`
	Spawn  PointConfig `mapstructure:"spawn"`
	Spread float64     `mapstructure:"spread"`
}

type ObstacleConfig struct {
	Name   string        `mapstructure:"name"`
	Points []PointConfig `mapstructure:"points"`
}

type PickupConfig struct {
	Position PointConfig `mapstructure:"position"`
	Amount   int         `mapstructure:"amount"`
}

type RuleConfig struct {
	Name      string `mapstructure:"name"`
	Priority  int    `mapstructure:"priority"`
	Condition string `mapstructure:"condition"`
	Task      string `mapstructure:"task"`
}

type BehaviorSettings struct {
	Rules       []RuleConfig `mapstructure:"rules"`
	EngageRange float64      `mapstructure:"engageRange"`
	RetreatStep float64      `mapstructure:"retreatStep"`
	PatrolStep  float64      `mapstructure:"patrolStep"`
}

type LogSettings struct {
	Level string `mapstructure:"level"`
}

// Specs converts the bot settings into combatant tunables.
func (b BotSettings) Specs() bot.Specs {
	return bot.Specs{
		MaxHealth:        b.MaxHealth,
		RetreatThreshold: b.RetreatThreshold,
		DestroyDelay:     b.DestroyDelay,

		StartAmmo:          b.StartAmmo,
		MaxAmmo:            b.MaxAmmo,
		AmmoAddCeiling:     b.AmmoAddCeiling,
		LowAmmoThreshold:   b.LowAmmoThreshold,
		FireDelay:          b.FireDelay,
		FireEffectDuration: b.FireEffectDuration,
		ProjectileTemplate: b.ProjectileTemplate,

		SelectTargetInterval: b.SelectTargetInterval,
		TurnSpeed:            b.TurnSpeed,
		PickupSearchRadius:   b.PickupSearchRadius,
	}
}

// Projectile finds a projectile template by name.
func (c ArenaConfig) Projectile(name string) (ProjectileConfig, bool) {
	for _, p := range c.Projectiles {
		if p.Name == name {
			return p, true
		}
	}

	return ProjectileConfig{}, false
}

func setDefaults(v *viper.Viper) {
	specs := bot.DefaultSpecs()

	v.SetDefault("arena.name", "deathmatch")
	v.SetDefault("arena.tps", 20)
	v.SetDefault("arena.ticks", 2000)
	v.SetDefault("arena.width", 1000)
	v.SetDefault("arena.height", 1000)
	v.SetDefault("arena.seed", 1)

	v.SetDefault("bot.maxHealth", specs.MaxHealth)
	v.SetDefault("bot.retreatThreshold", specs.RetreatThreshold)
	v.SetDefault("bot.destroyDelay", specs.DestroyDelay)
	v.SetDefault("bot.startAmmo", specs.StartAmmo)
	v.SetDefault("bot.maxAmmo", specs.MaxAmmo)
	v.SetDefault("bot.ammoAddCeiling", specs.AmmoAddCeiling)
	v.SetDefault("bot.lowAmmoThreshold", specs.LowAmmoThreshold)
	v.SetDefault("bot.fireDelay", specs.FireDelay)
	v.SetDefault("bot.fireEffectDuration", specs.FireEffectDuration)
	v.SetDefault("bot.selectTargetInterval", specs.SelectTargetInterval)
	v.SetDefault("bot.turnSpeed", specs.TurnSpeed)
	v.SetDefault("bot.pickupSearchRadius", specs.PickupSearchRadius)
	v.SetDefault("bot.pickupReach", 20)
	v.SetDefault("bot.visionRadius", 400)
	v.SetDefault("bot.visionAngle", math.Pi)
	v.SetDefault("bot.radius", 10)
	v.SetDefault("bot.maxSpeed", 60)
	v.SetDefault("bot.projectileTemplate", specs.ProjectileTemplate)

	v.SetDefault("projectiles", []map[string]interface{}{
		{"name": specs.ProjectileTemplate, "damage": 10, "range": 1000},
	})

	v.SetDefault("teams", []map[string]interface{}{
		{"team": bot.Team1.String(), "count": 3, "spawn": map[string]interface{}{"x": 150, "y": 150}, "spread": 60},
		{"team": bot.Team2.String(), "count": 3, "spawn": map[string]interface{}{"x": 850, "y": 850}, "spread": 60},
	})

	v.SetDefault("obstacles", []map[string]interface{}{
		{"name": "pillar", "points": []map[string]interface{}{
			{"x": 450, "y": 450}, {"x": 550, "y": 450}, {"x": 550, "y": 550}, {"x": 450, "y": 550},
		}},
	})

	v.SetDefault("crouchZones", []map[string]interface{}{
		{"name": "trench", "points": []map[string]interface{}{
			{"x": 100, "y": 450}, {"x": 300, "y": 450}, {"x": 300, "y": 550}, {"x": 100, "y": 550},
		}},
	})

	v.SetDefault("pickups", []map[string]interface{}{
		{"position": map[string]interface{}{"x": 200, "y": 800}, "amount": 50},
		{"position": map[string]interface{}{"x": 800, "y": 200}, "amount": 50},
	})

	v.SetDefault("behavior.engageRange", 250)
	v.SetDefault("behavior.retreatStep", 200)
	v.SetDefault("behavior.patrolStep", 150)
	v.SetDefault("behavior.rules", []map[string]interface{}{
		{"name": "retreat", "priority": 100, "condition": "ShouldRetreat && HasTarget", "task": "Retreat"},
		{"name": "resupply", "priority": 80, "condition": "CollectAmmo && HasAmmoBox", "task": "CollectAmmo"},
		{"name": "engage", "priority": 50, "condition": "HasTarget && Ammo > 0", "task": "ShootTarget"},
		{"name": "patrol", "priority": 0, "condition": "true", "task": "Patrol"},
	})

	v.SetDefault("log.level", "info")
}

// Default returns the configuration used when no file is given.
func Default() ArenaConfig {
	cfg, err := load(newViper())
	if err != nil {
		panic(err)
	}

	return cfg
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("BOTARENA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the JSON configuration at path; an empty path yields the
// defaults. Environment variables prefixed with BOTARENA_ override scalar
// keys (BOTARENA_BOT_MAXHEALTH).
func Load(path string) (ArenaConfig, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("json")

		if err := v.ReadInConfig(); err != nil {
			return ArenaConfig{}, errors.Wrapf(err, "error reading config file %s", path)
		}
	}

	cfg, err := load(v)
	if err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

func load(v *viper.Viper) (ArenaConfig, error) {
	var cfg ArenaConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, errors.Wrap(err, "error decoding config")
	}

	return cfg, nil
}

// Crouch zones are convex physics polygons.
const maxZoneVertices = 8

func invalid(msg string, key string, value string) error {
	return bettererrors.
		New("Invalid configuration").
		With(bettererrors.NewFromString(msg)).
		SetContext("key", key).
		SetContext("value", value)
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Validate reports the first invalid value.
func (c ArenaConfig) Validate() error {
	if c.Arena.Tps <= 0 {
		return invalid("tps must be positive", "arena.tps", strconv.Itoa(c.Arena.Tps))
	}

	if !(c.Bot.MaxHealth > 0) {
		return invalid("max health must be positive", "bot.maxHealth", ftoa(c.Bot.MaxHealth))
	}

	if !(c.Bot.RetreatThreshold >= 0 && c.Bot.RetreatThreshold <= 1) {
		return invalid("retreat threshold must lie in [0, 1]", "bot.retreatThreshold", ftoa(c.Bot.RetreatThreshold))
	}

	if c.Bot.MaxAmmo < 0 || c.Bot.StartAmmo < 0 || c.Bot.StartAmmo > c.Bot.MaxAmmo {
		return invalid("start ammo must lie in [0, maxAmmo]", "bot.startAmmo", strconv.Itoa(c.Bot.StartAmmo))
	}

	if c.Bot.FireDelay < 0 {
		return invalid("fire delay cannot be negative", "bot.fireDelay", ftoa(c.Bot.FireDelay))
	}

	if !(c.Bot.Radius > 0) {
		return invalid("radius must be positive", "bot.radius", ftoa(c.Bot.Radius))
	}

	if c.Bot.ProjectileTemplate != "" {
		if _, ok := c.Projectile(c.Bot.ProjectileTemplate); !ok {
			return invalid("unknown projectile template", "bot.projectileTemplate", c.Bot.ProjectileTemplate)
		}
	}

	for i, team := range c.Teams {
		if _, ok := bot.ParseTeam(team.Team); !ok {
			return invalid("unknown team", "teams."+strconv.Itoa(i)+".team", team.Team)
		}

		if team.Count < 0 {
			return invalid("team count cannot be negative", "teams."+strconv.Itoa(i)+".count", strconv.Itoa(team.Count))
		}
	}

	for i, obstacle := range c.Obstacles {
		if len(obstacle.Points) < 3 {
			return invalid("obstacle polygon needs at least 3 points", "obstacles."+strconv.Itoa(i)+".points", strconv.Itoa(len(obstacle.Points)))
		}
	}

	for i, zone := range c.CrouchZones {
		if len(zone.Points) < 3 || len(zone.Points) > maxZoneVertices {
			return invalid("crouch zone needs between 3 and 8 points", "crouchZones."+strconv.Itoa(i)+".points", strconv.Itoa(len(zone.Points)))
		}
	}

	for i, pickup := range c.Pickups {
		if pickup.Amount <= 0 {
			return invalid("pickup amount must be positive", "pickups."+strconv.Itoa(i)+".amount", strconv.Itoa(pickup.Amount))
		}
	}

	return nil
}

func warning(msg string, key string, value string) error {
	return bettererrors.
		New("Suspicious configuration").
		With(bettererrors.NewFromString(msg)).
		SetContext("key", key).
		SetContext("value", value)
}

func (c ArenaConfig) inArena(p PointConfig) bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= c.Arena.Width && p.Y <= c.Arena.Height
}

// Warnings lists the values that are valid but probably not intended. They
// never stop a run.
func (c ArenaConfig) Warnings() []error {
	var warnings []error

	for i, team := range c.Teams {
		key := "teams." + strconv.Itoa(i)

		if team.Count == 0 {
			warnings = append(warnings, warning("team spawns no combatant", key+".count", "0"))
		}

		if !c.inArena(team.Spawn) {
			warnings = append(warnings, warning("spawn point lies outside the arena", key+".spawn", ftoa(team.Spawn.X)+","+ftoa(team.Spawn.Y)))
		}
	}

	for i, pickup := range c.Pickups {
		if !c.inArena(pickup.Position) {
			warnings = append(warnings, warning("pickup lies outside the arena", "pickups."+strconv.Itoa(i)+".position", ftoa(pickup.Position.X)+","+ftoa(pickup.Position.Y)))
		}
	}

	return warnings
}
