package gpx

import "encoding/xml"

// Tagged document model for writing GPX 1.1. Reading goes through the
// generic node tree instead, so these types shape output only.

type document struct {
	XMLName  xml.Name      `xml:"gpx"`
	Version  string        `xml:"version,attr"`
	Creator  string        `xml:"creator,attr"`
	XMLNS    string        `xml:"xmlns,attr"`
	Metadata *metadataElem `xml:"metadata,omitempty"`
	Track    trackElem     `xml:"trk"`
}

type metadataElem struct {
	Time     string `xml:"time,omitempty"`
	Keywords string `xml:"keywords,omitempty"`
}

type trackElem struct {
	Name        string      `xml:"name"`
	Description string      `xml:"desc,omitempty"`
	Segment     segmentElem `xml:"trkseg"`
}

type segmentElem struct {
	Points []pointElem `xml:"trkpt"`
}

type pointElem struct {
	Lat        float64         `xml:"lat,attr"`
	Lon        float64         `xml:"lon,attr"`
	Elevation  float64         `xml:"ele"`
	Time       string          `xml:"time,omitempty"`
	Extensions *extensionsElem `xml:"extensions,omitempty"`
}

type extensionsElem struct {
	Power int `xml:"power"`
}
