package i2cinit

import "time"

// Recover unsticks an I2C bus whose peer is holding SDA low. Some devices
// (the Nunchuk included) can keep a line asserted after power-on or an
// interrupted transaction; clocking SCL manually lets the peer finish the
// byte it thinks it is shifting out.
//
// Up to nine clock pulses are sent (the standard recovery count), stopping
// early the first time SDA reads high. A STOP condition follows so the
// peer sees a clean end of transaction. Both lines are released and the
// bus is given 50ms to settle. Best effort, no return value: the caller
// re-verifies bus health by retrying acquisition.
func Recover(scl, sda Line) {
	println("  sending clock pulses to release the I2C bus...")
	scl.Output()
	sda.Input(PullUp)

	for i := 0; i < 9; i++ {
		scl.Set(false)
		time.Sleep(time.Millisecond)
		scl.Set(true)
		time.Sleep(time.Millisecond)
		if sda.Get() {
			println("  bus released after", i+1, "clock pulses")
			break
		}
	}

	// STOP condition: SDA low -> high while SCL is high.
	sda.Output()
	sda.Set(false)
	time.Sleep(time.Millisecond)
	scl.Set(true)
	time.Sleep(time.Millisecond)
	sda.Set(true)
	time.Sleep(time.Millisecond)

	scl.Release()
	sda.Release()
	time.Sleep(50 * time.Millisecond)
}
