// Package xmlconfig parses compat change definitions from XML config
// documents and loads whole config directories into change records.
//
// A document looks like:
//
//	<config>
//	    <compat-change id="1234" name="MY_CHANGE" enableAfterTargetSdk="2"/>
//	    <compat-change id="1235" name="OTHER_CHANGE" disabled="true"/>
//	</config>
//
// id and name are required. enableAfterTargetSdk defaults to ungated and
// disabled defaults to false when absent.
package xmlconfig

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/sdkgate/sdkgate/internal/services/compat/registry"
)

type document struct {
	XMLName xml.Name     `xml:"config"`
	Changes []changeElem `xml:"compat-change"`
}

type changeElem struct {
	ID                   *uint64 `xml:"id,attr"`
	Name                 *string `xml:"name,attr"`
	EnableAfterTargetSdk *int32  `xml:"enableAfterTargetSdk,attr"`
	Disabled             bool    `xml:"disabled,attr"`
	Description          string  `xml:"description,attr"`
}

// ParseDocument decodes one config document into change records.
func ParseDocument(r io.Reader) ([]registry.Change, error) {
	var doc document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode config document: %w", err)
	}

	changes := make([]registry.Change, 0, len(doc.Changes))
	for i, elem := range doc.Changes {
		if elem.ID == nil {
			return nil, fmt.Errorf("compat-change entry %d: missing id attribute", i)
		}
		if elem.Name == nil {
			return nil, fmt.Errorf("compat-change entry %d: missing name attribute", i)
		}

		gate := registry.UngatedSDK
		if elem.EnableAfterTargetSdk != nil {
			gate = *elem.EnableAfterTargetSdk
		}
		changes = append(changes, registry.Change{
			ID:                   registry.ChangeID(*elem.ID),
			Name:                 *elem.Name,
			EnableAfterTargetSDK: gate,
			Disabled:             elem.Disabled,
			Description:          elem.Description,
		})
	}
	return changes, nil
}
