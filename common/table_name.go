package common

type TableName struct {
	Schema      string
	Table       string
	SchemaPlain string
	TablePlain  string
}

func (this TableName) String() string {
	return this.Schema + "." + this.Table
}
