// Command wordclient sends a single request to a wordindex server process and
// prints the decoded response. It is meant for poking at the IPC protocol.
//
//	wordclient [-bin ./wordindex] <action> [text] [category] [length]
package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/bastiangx/wordindex/pkg/server"
	"github.com/vmihailenco/msgpack/v5"
)

func main() {
	bin := flag.String("bin", "./wordindex", "Path to the wordindex binary")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: wordclient [-bin path] <action> [text] [category] [length]")
		os.Exit(1)
	}

	request := server.Request{ID: "client", Action: args[0]}
	if len(args) > 1 {
		request.Text = args[1]
	}
	if len(args) > 2 {
		request.Category = args[2]
	}
	if len(args) > 3 {
		length, err := strconv.Atoi(args[3])
		if err != nil {
			fmt.Printf("Invalid length %q: %v\n", args[3], err)
			os.Exit(1)
		}
		request.Length = length
	}

	requestData, err := msgpack.Marshal(request)
	if err != nil {
		fmt.Printf("Failed to encode request: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Encoded request (%d bytes): %x\n", len(requestData), requestData)

	cmd := exec.Command(*bin)
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		fmt.Printf("Failed to get stdin pipe: %v\n", err)
		os.Exit(1)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		fmt.Printf("Failed to get stdout pipe: %v\n", err)
		os.Exit(1)
	}

	if err := cmd.Start(); err != nil {
		fmt.Printf("Failed to start %s: %v\n", *bin, err)
		os.Exit(1)
	}

	if _, err := stdin.Write(requestData); err != nil {
		fmt.Printf("Failed to write request: %v\n", err)
		os.Exit(1)
	}
	stdin.Close()

	dec := msgpack.NewDecoder(stdout)

	var ready server.StatusResponse
	if err := dec.Decode(&ready); err != nil {
		fmt.Printf("Failed to read ready message: %v\n", err)
		os.Exit(1)
	}

	// responses differ per action, so decode generically
	var response map[string]any
	if err := dec.Decode(&response); err != nil {
		fmt.Printf("Failed to decode response: %v\n", err)
		os.Exit(1)
	}

	if msg, ok := response["e"]; ok {
		fmt.Printf("Error: %v (code: %v)\n", msg, response["code"])
		cmd.Wait()
		os.Exit(1)
	}

	fmt.Printf("Response for %s:\n", request.Action)
	for k, v := range response {
		fmt.Printf("  %s: %v\n", k, v)
	}

	cmd.Wait()
}
