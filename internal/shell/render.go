package shell

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// placeholderRegex matches a {{name}} template placeholder. Only the first
// match on each line is substituted.
var placeholderRegex = regexp.MustCompile(`\{\{(.*?)\}\}`)

// RenderTemplate copies r line by line, substituting the first placeholder
// found on each line with its value from vars. Every occurrence of that
// placeholder on the line is replaced; other placeholders on the same line
// are left as they are. Lines without a placeholder are copied unchanged.
func RenderTemplate(r io.Reader, vars map[string]string, source string) ([]byte, error) {
	var out bytes.Buffer
	br := bufio.NewReader(r)

	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			rendered, renderErr := renderLine(line, vars, source)
			if renderErr != nil {
				return nil, renderErr
			}
			out.WriteString(rendered)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read %s: %w", source, err)
		}
	}

	return out.Bytes(), nil
}

func renderLine(line string, vars map[string]string, source string) (string, error) {
	match := placeholderRegex.FindStringSubmatch(line)
	if match == nil {
		return line, nil
	}

	key := match[1]
	value, ok := vars[key]
	if !ok {
		return "", &MissingVariableError{Key: key, Source: source}
	}

	return strings.ReplaceAll(line, match[0], value), nil
}

// InsertVariables renders the colours template with the active variables and
// writes the result to the _colors.scss source. Nothing is written when a
// placeholder has no value.
func (g *Generator) InsertVariables() error {
	g.logger.Debug("rendering colours", "destination", g.paths.ColorsSource)

	f, source, err := g.loader.Open(colorsTemplateName)
	if err != nil {
		g.logger.Error("unable to open colours template", "error", err)
		return err
	}
	defer f.Close()

	content, err := RenderTemplate(f, g.variables, source)
	if err != nil {
		g.logger.Error("unable to render colours template", "error", err)
		return err
	}

	if err := writeFileAtomic(g.paths.ColorsSource, content, 0o644); err != nil {
		g.logger.Error("unable to write colours source", "error", err)
		return err
	}

	return nil
}
