package ui

// PickerEmojis is the fixed grid the emoji picker shows, in display order.
var PickerEmojis = []string{
	"😀", "😂", "😊", "🥰", "😍", "😎", "🙄", "😴",
	"🤔", "🤯", "😱", "🥳", "😭", "😡", "🤢", "👍",
	"👎", "👏", "🙏", "💪", "🤝", "❤️", "💔", "💯",
	"🔥", "💩", "🎉", "✨", "🌈", "⭐", "🍕", "🏆",
}

// pickerColumns is how many emoji sit on one picker row.
const pickerColumns = 8

// QuickReactions are the reactions offered on number keys while a message
// is selected, in key order: 1, 2, 3.
var QuickReactions = []string{"👍", "❤️", "😂"}
