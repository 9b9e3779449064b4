package cli

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/arloliu/uvcval/schema"
	"github.com/arloliu/uvcval/uvc"
)

// resolveSchema accepts either a control name from cat or a type
// description. A nil cat means the default catalog.
func resolveSchema(arg string, cat *uvc.Catalog) (*schema.Schema, error) {
	if cat == nil {
		cat = uvc.DefaultCatalog()
	}
	if c, ok := cat.Lookup(arg); ok {
		return c.Schema(), nil
	}

	s, err := schema.Parse(arg)
	if err != nil {
		return nil, fmt.Errorf("%q is neither a known control nor a valid type description: %w", arg, err)
	}

	return s, nil
}

func loadCatalog(path string) (*uvc.Catalog, error) {
	if path == "" {
		return uvc.DefaultCatalog(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cat, err := uvc.LoadCatalog(f, uvc.WithLogger(logger()))
	if err != nil {
		return nil, err
	}
	cliLogger().Debug("catalog loaded", "path", path, "controls", cat.Len())

	return cat, nil
}

// decodeHex accepts hex with optional "0x" prefix and embedded spaces or colons.
func decodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
	s = strings.NewReplacer(" ", "", ":", "").Replace(s)

	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex: %w", err)
	}

	return b, nil
}
