package fibcode_test

import (
	"bytes"
	"fmt"

	"github.com/arloliu/fibcode"
	"github.com/arloliu/fibcode/blob"
	"github.com/arloliu/fibcode/format"
)

func ExampleEncodeSlice() {
	bits, err := fibcode.EncodeSlice([]uint32{1, 50, 3003})
	if err != nil {
		panic(err)
	}

	fmt.Println(bits.String())
	fmt.Printf("% x\n", bits.Bytes())
	// Output:
	// 11001001011000010010000100011
	// c9 61 21 18
}

func ExampleDecode() {
	bits, _ := fibcode.EncodeSlice([]uint64{256, 7})

	// 256 does not fit uint8; decoding resumes with the next code word.
	for v, err := range fibcode.Decode[uint8](bits) {
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		fmt.Println(v)
	}
	// Output:
	// error: constructing number would overflow result type at bit position 11 (code word at offset 0)
	// 7
}

func ExamplePack() {
	data, nbits, _ := fibcode.Pack([]uint16{1, 50, 3003})
	fmt.Println(len(data), nbits)

	values, _ := fibcode.Unpack[uint16](data)
	fmt.Println(values)
	// Output:
	// 4 29
	// [1 50 3003]
}

func ExampleNewWriter() {
	var buf bytes.Buffer

	w, _ := fibcode.NewWriter[uint32](&buf)
	for _, v := range []uint32{4, 2, 1} {
		_ = w.Write(v)
	}
	_ = w.Close()

	fmt.Printf("%08b\n", buf.Bytes())

	r, _ := fibcode.NewReader[uint32](&buf)
	for v, err := range r.All() {
		if err != nil {
			panic(err)
		}
		fmt.Println(v)
	}
	// Output:
	// [10110111 10000000]
	// 4
	// 2
	// 1
}

func ExampleNewBlobEncoder() {
	encoder, _ := fibcode.NewBlobEncoder[uint16](blob.WithCompression(format.CompressionNone))
	_ = encoder.WriteSlice([]uint16{1, 50, 3003})

	b, _ := encoder.Finish()
	fmt.Println(b.Len(), b.Width(), b.Compression(), b.Size())

	decoder, _ := fibcode.NewBlobDecoder[uint16](b.Bytes())
	values, _ := decoder.Values()
	fmt.Println(values)
	// Output:
	// 3 uint16 None 36
	// [1 50 3003]
}
