package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"

	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"
	"github.com/xssnick/bitbuf/bitbuf"
	"github.com/xssnick/bitbuf/frame"
)

type reading struct {
	sensor   uint8  // 5 bits
	alarm    bool   // 1 bit
	celsius  uint16 // 11 bits, offset by 400 to keep it unsigned
	sequence uint32 // 20 bits
}

func main() {
	pub, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		log.Fatalln("keygen err:", err.Error())
		return
	}

	readings := []reading{
		{sensor: 3, celsius: 400 + 215, sequence: 1},
		{sensor: 17, alarm: true, celsius: 400 + 1012, sequence: 2},
		{sensor: 31, celsius: 400 - 123, sequence: 3},
	}

	buf := bitbuf.New(0)
	defer buf.Release()

	// 2 bits of message type, then count of readings
	buf.MustAppend(0b10, 2).MustAppend(uint64(len(readings)), 6)
	for _, r := range readings {
		if _, err = bitbuf.AppendValue(buf, r.sensor, 5); err != nil {
			log.Fatalln("pack sensor err:", err.Error())
			return
		}
		if err = buf.AppendBool(r.alarm); err != nil {
			log.Fatalln("pack alarm err:", err.Error())
			return
		}
		if _, err = bitbuf.AppendValue(buf, r.celsius, 11); err != nil {
			log.Fatalln("pack temperature err:", err.Error())
			return
		}
		if _, err = bitbuf.AppendValue(buf, r.sequence, 20); err != nil {
			log.Fatalln("pack sequence err:", err.Error())
			return
		}
	}

	fmt.Println("packed:", buf.Dump())

	data, err := frame.Seal(buf, key)
	if err != nil {
		log.Fatalln("seal err:", err.Error())
		return
	}
	fmt.Println("frame:", hex.EncodeToString(data))

	got, err := frame.Open(data, pub)
	if err != nil {
		log.Fatalln("open err:", err.Error())
		return
	}

	var cursor uint
	typ := got.MustGetAt(&cursor, 2)
	num := got.MustGetAt(&cursor, 6)
	fmt.Println("type:", typ, "readings:", num)

	for i := uint64(0); i < num; i++ {
		sensor := got.MustGetAt(&cursor, 5)
		alarm := got.MustGetAt(&cursor, 1) == 1
		celsius := int(got.MustGetAt(&cursor, 11)) - 400
		seq := got.MustGetAt(&cursor, 20)

		fmt.Printf("#%d sensor %d: %d°C alarm=%v\n", seq, sensor, celsius, alarm)
	}
}
