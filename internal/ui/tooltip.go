// Package ui provides the Wortuhr desktop UI components.
//
// This file provides tooltip-enabled button helpers using the fyne-tooltip library.

package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	ttwidget "github.com/dweymouth/fyne-tooltip/widget"
)

// newIconButtonWithTooltip creates an icon-only button with a tooltip that appears on hover.
func newIconButtonWithTooltip(icon fyne.Resource, tooltip string, tapped func()) *ttwidget.Button {
	btn := ttwidget.NewButtonWithIcon("", icon, tapped)
	btn.SetToolTip(tooltip)
	return btn
}

// newButtonWithTooltip creates a labelled button with a hover tooltip.
func newButtonWithTooltip(label string, icon fyne.Resource, tooltip string, tapped func()) *ttwidget.Button {
	btn := ttwidget.NewButtonWithIcon(label, icon, tapped)
	btn.SetToolTip(tooltip)
	return btn
}

// newHelpIcon is a flat info button that only carries a tooltip.
func newHelpIcon(tooltip string) *ttwidget.Button {
	btn := newIconButtonWithTooltip(theme.InfoIcon(), tooltip, nil)
	btn.Importance = widget.LowImportance
	return btn
}
