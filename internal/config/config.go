// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth    = 1344
	ScreenHeight   = 756
	TicksPerSecond = 60
	FixedDeltaTime = 1.0 / TicksPerSecond
	WindowTitle    = "Terra"
)

// Игрок
const (
	PlayerSpeed         = 250.0
	PlayerBaseHP        = 100
	PlayerBaseMana      = 50
	InitialXPToNext     = 100
	XPGrowthFactor      = 1.5
	IdleDampingFactor   = 0.6
	IdleVelocityEpsSq   = 1.0
	PlayerDeathFrames   = 3
	PlayerDeathFrameDur = 0.4
	PlayerSize          = 32.0
	PlayerMoveFrameDur  = 0.1
)

// Враги
const (
	EnemyRemovalDelay   = 5.0
	EnemyDeathFrames    = 5
	EnemyDeathFrameDur  = 0.2
	EnemyMoveFrameDur   = 0.1
	RecoverySpeedFactor = 0.5 // скорость во время восстановления после отброса
	AttackTriggerFactor = 0.5 // доля дальности атаки, с которой начинается замах
)

// Отброс и оглушение
const (
	KnockbackSpeedFactor = 100.0 // скорость отброса = сила * коэффициент
	KnockbackDuration    = 0.2
	KnockbackRecoveryPad = 0.1
	MeleeHitStun         = 0.1
	MeleeHitFrames       = 3 // удар наносится только в первых кадрах взмаха
)

// Спавн и волны
const (
	SpawnInterval    = 1.0
	SpawnRadiusMin   = 250.0
	SpawnRadiusMax   = 400.0
	UpgradeChoices   = 3
	IntroFadeInTime  = 1.0
	IntroHoldTime    = 2.0
	IntroFadeOutTime = 1.0
	GameOverAnimTime = 1.5
	NewGameDelay     = 5.0
	ProjectileSize   = 8.0
	DefaultEnemyID   = "slime"
)

// Интерфейс
const (
	HUDMargin        = 16
	BarWidth         = 180
	BarHeight        = 14
	UpgradeCardW     = 240
	UpgradeCardH     = 140
	UpgradeCardGap   = 32
	ButtonWidth      = 220
	ButtonHeight     = 48
	CooldownDotSize  = 6.0
	MeleeArcSegments = 16
	StrokeWidth      = 2.0
	HUDTextOffset    = 4
	FontSizeSmall    = 12
	FontSizeRegular  = 16
	FontSizeTitle    = 56
	MenuTitle        = "TERRA"
)

var (
	BackgroundColor   = color.RGBA{34, 40, 34, 255}
	GridColor         = color.RGBA{44, 52, 44, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	TextDarkColor     = color.RGBA{20, 20, 30, 255}
	PlayerColor       = color.RGBA{70, 130, 180, 255}
	EnemyColor        = color.RGBA{90, 200, 90, 255}
	EnemyWindupColor  = color.RGBA{230, 180, 60, 255}
	ProjectileColor   = color.RGBA{255, 230, 120, 255}
	MeleeArcColor     = color.RGBA{90, 90, 90, 90}
	HealthBarColor    = color.RGBA{200, 50, 50, 230}
	ManaBarColor      = color.RGBA{60, 110, 220, 230}
	XPBarColor        = color.RGBA{70, 100, 120, 220}
	BarBorderColor    = color.RGBA{240, 240, 240, 255}
	CardColor         = color.RGBA{30, 30, 45, 230}
	CardHoverColor    = color.RGBA{60, 60, 90, 240}
	ButtonColor       = color.RGBA{180, 180, 180, 255}
	ButtonHoverColor  = color.RGBA{130, 130, 130, 255}
	OverlayColor      = color.RGBA{0, 0, 0, 160}
	WaveTextColor     = color.RGBA{0, 121, 241, 255}
	GameOverTextColor = color.RGBA{220, 60, 60, 255}
	WinTextColor      = color.RGBA{255, 215, 0, 255}
)
