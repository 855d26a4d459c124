package main

import (
	"github.com/codetesla51/cookiestore/cookie"
	"github.com/codetesla51/cookiestore/store"
)

func main() {
	cs := cookie.New(store.NewJarStore())

	entry, err := cs.Set("session", "abc 123;v=2", &store.Options{
		Path:   "/",
		Secure: true,
	})
	if err != nil {
		println("Error setting session:", err.Error())
		return
	}
	println("Committed entry:", entry)

	value, err := cs.Get("session")
	if err != nil {
		println("Error reading session:", err.Error())
	} else {
		println("session =", value)
	}

	if _, err := cs.Remove("session"); err != nil {
		println("Error removing session:", err.Error())
	}
	if _, err := cs.Get("session"); err != nil {
		println("session removed:", err.Error())
	}
}
