package cbor

import "testing"

func TestSimpleConstructors(t *testing.T) {
	if e, a := Simple(20), Bool(false); e != a {
		t.Errorf("expect %d, got %d", e, a)
	}
	if e, a := Simple(21), Bool(true); e != a {
		t.Errorf("expect %d, got %d", e, a)
	}
	if e, a := Simple(22), Null(); e != a {
		t.Errorf("expect %d, got %d", e, a)
	}
	if e, a := Simple(23), Undefined(); e != a {
		t.Errorf("expect %d, got %d", e, a)
	}
}

func TestNegInt_Magnitude(t *testing.T) {
	cases := map[string]struct {
		in     int64
		expect Negative
	}{
		"minus one": {-1, Negative(0)},
		"minus ten": {-10, Negative(9)},
		"min int64": {-9223372036854775808, Negative(9223372036854775807)},
	}
	for name, tt := range cases {
		t.Run(name, func(t *testing.T) {
			if a := NegInt(tt.in); tt.expect != a {
				t.Errorf("expect magnitude %d, got %d", tt.expect, a)
			}
		})
	}
}

func TestEncode_NestedDocument(t *testing.T) {
	doc := Map{
		{Text("name"), Text("test")},
		{Text("colors"), Array{Text("blue"), Text("green")}},
	}

	expect := mkex("a2646e616d65647465737466636f6c6f72738264626c756565677265656e")
	if e, a := len(expect), EncodedSize(doc); e != a {
		t.Errorf("expect size %d, got %d", e, a)
	}
	assertBytes(t, expect, encodeExact(t, doc))
}

func TestEncodedSize_Leaves(t *testing.T) {
	cases := map[string]struct {
		in     Value
		expect int
	}{
		"small uint": {Unsigned(7), 1},
		"uint8":      {Unsigned(42), 2},
		"uint16":     {Unsigned(1000), 3},
		"null":       {Null(), 1},
		"simple 24":  {Simple(24), 2},
		"float":      {Float(3.14159), 9},
		"text":       {Text("key"), 4},
		"bytes":      {Bytes{1, 2, 3}, 4},
		"tag":        {Tag{Number: 23, Value: Unsigned(5)}, 2},
	}
	for name, tt := range cases {
		t.Run(name, func(t *testing.T) {
			if a := EncodedSize(tt.in); tt.expect != a {
				t.Errorf("expect %d, got %d", tt.expect, a)
			}
		})
	}
}

func TestCursor_StopsAtCapacity(t *testing.T) {
	cur := &cursor{buf: make([]byte, 2)}
	if err := cur.writeByte(0x01); err != nil {
		t.Fatal(err)
	}
	if err := cur.writeByte(0x02); err != nil {
		t.Fatal(err)
	}
	if err := cur.writeByte(0x03); err != ErrBufferTooSmall {
		t.Fatalf("expect ErrBufferTooSmall, got %v", err)
	}
	// A failed write leaves the position where it was.
	if e, a := 2, cur.pos; e != a {
		t.Errorf("expect pos %d, got %d", e, a)
	}
	assertBytes(t, []byte{0x01, 0x02}, cur.buf)
}

func TestCursor_ZeroCapacity(t *testing.T) {
	cur := &cursor{}
	if err := cur.writeByte(0xff); err != ErrBufferTooSmall {
		t.Fatalf("expect ErrBufferTooSmall, got %v", err)
	}
}
