package osc

const zero = string(byte(0))

// nulls returns a string of `i` nulls.
func nulls(i int) string {
	s := ""
	for j := 0; j < i; j++ {
		s += zero
	}
	return s
}

type testCase struct {
	name string
	raw  []byte
	obj  Contents
}

var messageTestCases = []testCase{
	{
		"no arguments",
		[]byte("/example" + nulls(4) + "," + nulls(3)),
		&Message{Address: "/example", Typetags: ","},
	},
	{
		"root address",
		[]byte("/" + nulls(3) + "," + nulls(3)),
		&Message{Address: "/", Typetags: ","},
	},
	{
		"int and float arguments",
		[]byte("/ping" + nulls(3) + ",if" + nulls(1) +
			string([]byte{0, 0, 0, 42, 0x3f, 0x80, 0, 0})),
		&Message{Address: "/ping", Typetags: ",if", Payload: []byte{0, 0, 0, 42, 0x3f, 0x80, 0, 0}},
	},
	{
		"string argument",
		[]byte("/composition/layers/1/clips/1/connect" + nulls(3) + ",s" + nulls(2) +
			"hello" + nulls(3)),
		&Message{
			Address:  "/composition/layers/1/clips/1/connect",
			Typetags: ",s",
			Payload:  []byte("hello" + nulls(3)),
		},
	},
}

var bundleTestCases = []testCase{
	{
		"empty bundle",
		[]byte("#bundle" + nulls(1) + string([]byte{0, 0, 0, 0, 0, 0, 0, 1})),
		&Bundle{Timetag: TimetagImmediate},
	},
	{
		"bundle with one message",
		[]byte("#bundle" + nulls(1) +
			string([]byte{0, 0, 0, 0, 0, 0, 0, 1}) +
			string([]byte{0, 0, 0, 16}) +
			"/example" + nulls(4) + "," + nulls(3)),
		&Bundle{
			Timetag:  TimetagImmediate,
			Elements: []Contents{&Message{Address: "/example", Typetags: ","}},
		},
	},
	{
		"bundle with nested bundle",
		[]byte("#bundle" + nulls(1) +
			string([]byte{0, 0, 0, 0, 0, 0, 0, 2}) +
			string([]byte{0, 0, 0, 16}) +
			"#bundle" + nulls(1) + string([]byte{0, 0, 0, 0, 0, 0, 0, 3})),
		&Bundle{
			Timetag:  Timetag(2),
			Elements: []Contents{&Bundle{Timetag: Timetag(3)}},
		},
	},
}

// mustMarshal marshals c or panics; test fixture helper.
func mustMarshal(c Contents) []byte {
	b, err := c.MarshalBinary()
	if err != nil {
		panic(err)
	}
	return b
}
