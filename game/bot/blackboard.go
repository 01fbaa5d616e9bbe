package bot

// Keys of the values shared with the behavior layer.
const (
	KeyMoveLocation   = "MoveLocation"
	KeySelfLocation   = "SelfLocation"
	KeySelectedTarget = "SelectedTarget"
	KeyShouldRetreat  = "ShouldRetreat"
	KeyCollectAmmo    = "CollectAmmo"
	KeyAmmoBox        = "AmmoBox"
)
