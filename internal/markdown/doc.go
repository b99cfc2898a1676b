// Package markdown turns entry text into plain-text previews and terminal renderings.
package markdown
