package behavior

import "github.com/botarena/botarena/game/bot"

// checkForAmmo mirrors the low ammo predicate into CollectAmmo, so rules see
// it even between two decision steps.
func checkForAmmo(c *bot.Combatant, board Board) {
	board.SetValue(bot.KeyCollectAmmo, c.Ammo.LowOnAmmo())
}
