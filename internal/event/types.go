// internal/event/types.go
package event

const (
	EnemyKilled      EventType = "EnemyKilled"      // Враг убит, Data: *entity.Enemy
	PlayerLeveledUp  EventType = "PlayerLeveledUp"  // Уровень игрока вырос, Data: int (новый уровень)
	PlayerDied       EventType = "PlayerDied"       // Игрок начал умирать
	WaveStarted      EventType = "WaveStarted"      // Началась заставка волны, Data: int (номер волны)
	WaveEnded        EventType = "WaveEnded"        // Волна закончилась, Data: int (номер волны)
	UpgradesOffered  EventType = "UpgradesOffered"  // Предложены улучшения, Data: []string
	UpgradeApplied   EventType = "UpgradeApplied"   // Улучшение выбрано, Data: string (ID)
	GameWon          EventType = "GameWon"          // Спаунер исчерпан
	GamePauseToggled EventType = "GamePauseToggled" // Data: bool (пауза включена)
)
