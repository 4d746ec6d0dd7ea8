package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorBlue   = "\033[34m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

const headerWidth = 70

func printHeader(text string) {
	padding := (headerWidth - len(text) - 2) / 2
	border := strings.Repeat("═", headerWidth-2)
	fmt.Println(colorBlue + colorBold + "╔" + border + "╗" + colorReset)
	fmt.Printf("%s║%s%s%s%s%s%s%s║%s\n",
		colorBlue+colorBold, colorReset,
		strings.Repeat(" ", padding),
		colorBlue+colorBold, text, colorReset,
		strings.Repeat(" ", headerWidth-2-padding-len(text)),
		colorBlue+colorBold, colorReset)
	fmt.Println(colorBlue + colorBold + "╚" + border + "╝" + colorReset)
}

func printSection(title string) {
	line := strings.Repeat("─", 63)
	fmt.Printf("\n%s%s%s\n", colorBlue+colorBold, line, colorReset)
	fmt.Printf("%s  %s%s\n", colorBlue+colorBold, title, colorReset)
	fmt.Printf("%s%s%s\n", colorBlue+colorBold, line, colorReset)
}

func printItem(number, text string) {
	fmt.Printf("  %s%s)%s %s\n", colorBlue, number, colorReset, text)
}

func printSuccess(text string) {
	fmt.Printf("%sOK: %s%s\n", colorGreen, text, colorReset)
}

func printError(text string) {
	fmt.Printf("%sError: %s%s\n", colorYellow, text, colorReset)
}

func printInfo(text string) {
	fmt.Printf("%sInfo: %s%s\n", colorBlue, text, colorReset)
}

func printWarning(text string) {
	fmt.Printf("%sAdvertencia: %s%s\n", colorYellow, text, colorReset)
}

// printJSON pretty-prints raw JSON; anything unparseable is shown as-is.
func printJSON(raw []byte) {
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		fmt.Println(string(raw))
		return
	}
	fmt.Println(out.String())
}

func printPayload(data interface{}) {
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", data)
		return
	}
	fmt.Println(string(encoded))
}
