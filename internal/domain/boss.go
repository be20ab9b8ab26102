package domain

// ChannelBoss is the singleton cooperative damage-sink for one channel.
//
// Lifecycle: dormant (Active=false) -> engaged (Active=true, HP>0) ->
// defeated (Active=false, HP=0). The defeated state is transient; the next
// attack attempt spawns a fresh boss.
type ChannelBoss struct {
	Channel     string `json:"channel"`
	Active      bool   `json:"active"`
	Name        string `json:"name"`
	HP          int    `json:"hp"`
	MaxHP       int    `json:"maxHp"`
	RewardCoins int    `json:"rewardCoins"`
	RewardXP    int    `json:"rewardXp"`
	LastSpawn   int64  `json:"lastSpawn"`
}
