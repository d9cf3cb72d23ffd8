package builder

// Source field names as they appear in the index database export.
const (
	// FieldLabel is the sheet record designation, the one required field
	FieldLabel = "RECORD"
	// FieldTitle is the sheet's place name / title
	FieldTitle = "LOCATION"
	// FieldPublisher is the publishing agency
	FieldPublisher = "PUBLISHER"
	// FieldCallNo is the institutional call number / shelf location
	FieldCallNo = "CATLOC"
	// FieldEdition is the edition number
	FieldEdition = "EDITION_NO"

	// Bounding coordinates in decimal degrees
	FieldWest  = "X1"
	FieldEast  = "X2"
	FieldNorth = "Y1"
	FieldSouth = "Y2"

	// Categorical codes resolved through the lookup table
	FieldProduction    = "PRODUCTION"
	FieldPrimeMeridian = "PRIME_MER"
	FieldProjection    = "PROJECT"
	FieldISOType       = "ISO_TYPE"

	// Values carried through with light formatting
	FieldISOVal = "ISO_VAL"
	FieldScale  = "SCALE"
	FieldDate   = "DATE"
)

// Year/type pair fields; up to four independent observations per record.
var yearFields = [4]struct {
	Year string
	Type string
}{
	{"YEAR1", "YEAR1_TYPE"},
	{"YEAR2", "YEAR2_TYPE"},
	{"YEAR3", "YEAR3_TYPE"},
	{"YEAR4", "YEAR4_TYPE"},
}

// directMappings is the static rename table from source field to OIM
// attribute for fields copied without transformation.
var directMappings = []struct {
	Source    string
	Attribute string
}{
	{FieldLabel, "label"},
	{FieldTitle, "title"},
	{FieldPublisher, "publisher"},
	{FieldCallNo, "instCallNo"},
	{FieldEdition, "edition"},
}
