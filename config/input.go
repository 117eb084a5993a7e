package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical trainer action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionToggleMenu
	ActionNextLevel
	ActionPrevLevel
	ActionSpeedUp
	ActionSpeedDown
	ActionSizeUp
	ActionSizeDown
	ActionRestartRound
	ActionToggleMeditation
	ActionToggleHashtag
	ActionToggleVerticalStripes
	ActionToggleHorizontalStripes
	ActionToggleSolidOverlay
	ActionToggleAutoAdvance
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionToggleMenu: {
				Keys: []ebiten.Key{ebiten.KeyM},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionNextLevel: {
				Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyPeriod},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionPrevLevel: {
				Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyComma},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			ActionSpeedUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionSpeedDown: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionSizeUp: {
				Keys: []ebiten.Key{ebiten.KeyEqual, ebiten.KeyKPAdd},
				// Right bumper
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopRight,
				},
			},
			ActionSizeDown: {
				Keys: []ebiten.Key{ebiten.KeyMinus, ebiten.KeyKPSubtract},
				// Left bumper
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopLeft,
				},
			},
			ActionRestartRound: {
				Keys: []ebiten.Key{ebiten.KeyR},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionToggleMeditation: {
				Keys: []ebiten.Key{ebiten.KeyT},
				// Y / Triangle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightTop,
				},
			},
			ActionToggleHashtag: {
				Keys: []ebiten.Key{ebiten.KeyH},
			},
			ActionToggleVerticalStripes: {
				Keys: []ebiten.Key{ebiten.KeyV},
			},
			ActionToggleHorizontalStripes: {
				Keys: []ebiten.Key{ebiten.KeyB},
			},
			ActionToggleSolidOverlay: {
				Keys: []ebiten.Key{ebiten.KeyO},
			},
			ActionToggleAutoAdvance: {
				Keys: []ebiten.Key{ebiten.KeyA},
			},
			ActionQuit: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
			},
		},
	}
}
