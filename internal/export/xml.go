// Package export renders catalog entries as XML documents and property
// tables.
package export

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/couchcryptid/thermo-data-service/internal/catalog"
	"github.com/couchcryptid/thermo-data-service/internal/thermoinp"
)

type xmlValue struct {
	Units string  `xml:"units,attr"`
	Value float64 `xml:",chardata"`
}

type xmlInterval struct {
	Tmin                 float64 `xml:"Tmin,attr"`
	Tmax                 float64 `xml:"Tmax,attr"`
	Coefficients         string  `xml:"coefficients"`
	IntegrationConstants string  `xml:"integ_constants"`
}

type xmlThermo struct {
	Tmin      float64       `xml:"Tmin,attr"`
	Tmax      float64       `xml:"Tmax,attr"`
	Intervals []xmlInterval `xml:"interval"`
}

type xmlSpecies struct {
	XMLName           xml.Name   `xml:"species"`
	Name              string     `xml:"name,attr"`
	MolarMass         xmlValue   `xml:"molar_mass"`
	GasConstant       xmlValue   `xml:"gas_constant"`
	FormationEnthalpy *xmlValue  `xml:"formation_enthalpy,omitempty"`
	Thermo            *xmlThermo `xml:"thermo,omitempty"`
}

type xmlChemDB struct {
	XMLName xml.Name     `xml:"chemdb"`
	Species []xmlSpecies `xml:"species"`
}

// WriteXML serializes the given entries as an indented XML document.
func WriteXML(w io.Writer, entries []*catalog.Entry) error {
	doc := xmlChemDB{Species: make([]xmlSpecies, 0, len(entries))}
	for _, entry := range entries {
		doc.Species = append(doc.Species, toXMLSpecies(entry))
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("write xml: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("write xml: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func toXMLSpecies(entry *catalog.Entry) xmlSpecies {
	sp := entry.Species
	out := xmlSpecies{
		Name:        sp.Name,
		MolarMass:   xmlValue{Units: "kg/mol", Value: sp.MolarMass},
		GasConstant: xmlValue{Units: "J/kg-K", Value: sp.GasConstant},
	}
	if sp.HasFormation {
		out.FormationEnthalpy = &xmlValue{Units: "J/mol", Value: sp.FormationEnthalpy}
	}
	if sp.Model != nil {
		tmin, tmax := sp.Model.Bounds()
		t := &xmlThermo{Tmin: tmin, Tmax: tmax}
		for _, iv := range sp.Model.Intervals() {
			t.Intervals = append(t.Intervals, xmlInterval{
				Tmin:                 iv.Tmin,
				Tmax:                 iv.Tmax,
				Coefficients:         formatArray(iv.Coefficients[:]),
				IntegrationConstants: formatArray(iv.IntegrationConstants[:]),
			})
		}
		out.Thermo = t
	}
	return out
}

// formatArray renders values as space-separated Fortran-style doubles, the
// field format of the source database.
func formatArray(vs []float64) string {
	fields := make([]string, len(vs))
	for i, v := range vs {
		fields[i] = strings.TrimSpace(thermoinp.FormatDouble(v))
	}
	return strings.Join(fields, " ")
}
