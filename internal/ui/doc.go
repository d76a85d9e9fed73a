// Package ui renders the landing page in the terminal with Bubble Tea.
//
// Core pieces:
//   - View: a screen or overlay with its own model, update, view (Elm-style)
//   - LandingView: the page itself, scrollable, with a focus ring over the
//     button and footer links
//   - AboutView: overlay with version, credits and a QR code of the repository
//   - KeybindRegistry / KeyHandler: single keys, hotkeys and SPC-leader sequences
//   - AppModel: root model wiring activation to page.Navigator and browser.Opener
package ui
