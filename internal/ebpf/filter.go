// Socket filter programs attached to the datagram transports
package ebpf

import (
	"fmt"
	"sync"

	"github.com/cilium/ebpf"
	"github.com/cilium/ebpf/asm"
	"github.com/cilium/ebpf/rlimit"
	"golang.org/x/sys/unix"
)

var (
	memlockOnce   sync.Once
	memlockErr    error
	removeMemlock = rlimit.RemoveMemlock
)

// Builds a socket filter that keeps at most limit bytes of every datagram.
// Bytes past the limit would be discarded by a single chunk read anyway, trimming in the kernel
// keeps them out of the socket receive buffer.
func TrimFilterSpec(limit int) (spec *ebpf.ProgramSpec) {
	spec = &ebpf.ProgramSpec{
		Name:    FilterName,
		Type:    ebpf.SocketFilter,
		License: FilterLicense,
		Instructions: asm.Instructions{
			// r0 = skb->len
			asm.LoadMem(asm.R0, asm.R1, skbLenOffset, asm.Word),
			asm.JLE.Imm(asm.R0, int32(limit), keepLabel),
			asm.Mov.Imm(asm.R0, int32(limit)),
			// return r0 (bytes kept)
			asm.Return().WithSymbol(keepLabel),
		},
	}
	return
}

// Loads the trim filter and attaches it to the socket.
// Requires privileges to load socket filters, callers treat failure as non-fatal.
func AttachTrimFilter(fd int, limit int) (err error) {
	if limit <= 0 {
		err = fmt.Errorf("invalid trim limit %d", limit)
		return
	}

	// Kernels without memcg accounting still charge programs against RLIMIT_MEMLOCK
	lockErr := liftMemlock()
	defer func() {
		if err != nil && lockErr != nil {
			err = fmt.Errorf("%v (memlock limit not lifted: %v)", err, lockErr)
		}
	}()

	prog, err := ebpf.NewProgram(TrimFilterSpec(limit))
	if err != nil {
		err = fmt.Errorf("load socket filter: %v", err)
		return
	}
	// Socket holds its own reference once attached
	defer prog.Close()

	err = unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_ATTACH_BPF, prog.FD())
	if err != nil {
		err = fmt.Errorf("attach socket filter: %v", err)
		return
	}
	return
}

// Lifts the memlock limit once per process and keeps the outcome
func liftMemlock() (err error) {
	memlockOnce.Do(func() {
		memlockErr = removeMemlock()
	})
	err = memlockErr
	return
}
