package cli

import (
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/qjpcpu/benchprobe/printer"
	"github.com/qjpcpu/go-prompt"
)

type SelectWidget = promptui.Select

type SelectFn func(*SelectWidget)

// Select from menu, return -1 when aborted
func Select(label string, choices []string, opt ...SelectFn) (int, string) {
	prompt := promptui.Select{
		Label: label,
		Items: choices,
	}
	for _, fn := range opt {
		fn(&prompt)
	}

	_, result, _ := prompt.Run()

	for i, v := range choices {
		if v == result {
			return i, v
		}
	}
	return -1, ""
}

// SelectWithSearch from menu, filter by case-insensitive substring
func SelectWithSearch(label string, choices []string) int {
	searchFunction := func(s *SelectWidget) {
		s.Size = 10
		s.Searcher = func(input string, index int) bool {
			return strings.Contains(strings.ToLower(choices[index]), strings.ToLower(strings.TrimSpace(input)))
		}
	}
	idx, _ := Select(label, choices, searchFunction)
	return idx
}

// Confirm with y/n
func Confirm(label string, defaultY bool) bool {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	if defaultY {
		prompt.Default = "y"
	} else {
		prompt.Default = "n"
	}

	result, _ := prompt.Run()

	result = strings.ToLower(result)
	if defaultY {
		return result != "n"
	}
	return result == "y"
}

type InputOption func(*inputOption)

type Suggest struct {
	Text string
	Desc string
}

func (s Suggest) convert() prompt.Suggest { return prompt.Suggest{Text: s.Text, Description: s.Desc} }

type inputOption struct {
	suggestions []Suggest
	showHint    bool
	validateFn  func(string) error
}

func newInputOption() *inputOption {
	p := new(inputOption)
	p.validateFn = func(string) error { return nil }
	return p
}

func WithHint() InputOption {
	return func(opt *inputOption) {
		opt.showHint = true
	}
}

func WithSuggestions(list []Suggest) InputOption {
	return func(opt *inputOption) {
		opt.suggestions = list
	}
}

func WithValidator(v func(string) error) InputOption {
	return func(opt *inputOption) {
		opt.validateFn = v
	}
}

// InterruptableInput read a line until validator accepts it
func InterruptableInput(label string, fns ...InputOption) (text string, interrupted bool) {
	opt := newInputOption()
	for _, fn := range fns {
		fn(opt)
	}
	menu := func(d prompt.Document) []prompt.Suggest {
		return completeSuggestions(d.GetWordBeforeCursor(), opt.suggestions, opt.showHint)
	}
	for {
		text, interrupted = prompt.Input(
			label+" ",
			menu,
			prompt.OptionPrefixTextColor(prompt.Blue),
		)
		text = strings.TrimSpace(text)
		if interrupted {
			return
		}
		if err := opt.validateFn(text); err != nil {
			printer.Warn("%v", err)
		} else {
			break
		}
	}
	return
}

func completeSuggestions(word string, list []Suggest, showHint bool) []prompt.Suggest {
	var suggestions []prompt.Suggest
	seen := make(map[string]bool)
	for _, sg := range list {
		if strings.TrimSpace(sg.Text) == "" || seen[sg.Text] {
			continue
		}
		seen[sg.Text] = true
		s := sg.convert()
		if !showHint {
			s.Description = ""
		}
		suggestions = append(suggestions, s)
	}
	return prompt.FilterHasPrefix(suggestions, word, true)
}

// InputSizes ask for a comma separated size list, defaults are suggested
func InputSizes(label string, defaults []int, parse func(string) ([]int, error)) ([]int, bool) {
	var list []Suggest
	var all []string
	for _, n := range defaults {
		all = append(all, strconv.Itoa(n))
		list = append(list, Suggest{Text: strconv.Itoa(n), Desc: "default size"})
	}
	if len(all) > 1 {
		list = append([]Suggest{{Text: strings.Join(all, ","), Desc: "all default sizes"}}, list...)
	}
	validate := func(s string) error {
		if s == "" {
			return nil
		}
		_, err := parse(s)
		return err
	}
	text, interrupted := InterruptableInput(label, WithSuggestions(list), WithHint(), WithValidator(validate))
	if interrupted {
		return nil, false
	}
	if text == "" {
		return defaults, true
	}
	sizes, _ := parse(text)
	return sizes, true
}
