// Copyright 2013 - 2015 Sebastian Ruml <sebastian.ruml@gmail.com>
// Copyright 2021 - 2022 Mendel Greenberg <mendel@chabad360.me>

//Package osc constructs and deconstructs OpenSoundControl packets.
//
//This implementation is based on the Open Sound Control 1.0 Specification (http://opensoundcontrol.org/spec-1_0.html).
//
//Open Sound Control (OSC) is an open, transport-independent, message-based protocol developed for communication among computers,
//sound synthesizers, and other multimedia devices.
//
//Packets
//
//The unit of transmission of OSC is an OSC Packet: a contiguous block of binary
//data holding exactly one OSC message or one OSC bundle. Any application that
//sends OSC Packets is an OSC Client; any application that receives OSC Packets
//is an OSC Server.
//
//OSC Messages: An OSC message consists of an OSC address pattern, a type tag
//string, and zero or more OSC arguments. This package carries the argument
//bytes opaquely; interpreting them is left to the application.
//
//OSC Bundles: An OSC Bundle consists of an OSC Timetag, followed by zero or
//more OSC bundle elements. Each bundle element can be another OSC bundle (note
//this recursive definition: a bundle may contain bundles) or an OSC message.
//
//Receiving
//
//A Packet is filled from received bytes and then walked. The registered
//handler is called once for every message found in the packet, depth first, in
//the order the messages appear, together with the time tag of the nearest
//enclosing bundle:
//  var p osc.Packet
//  if err := p.InitFromBytes(datagram); err != nil {
//      return err
//  }
//  p.RegisterHandler(func(timetag *osc.Timetag, msg *osc.Message) {
//      fmt.Println(msg)
//  })
//  if err := p.ProcessMessages(); err != nil {
//      return err
//  }
//
//Sending
//
//A Packet is filled from an already-built message or bundle and transmitted:
//  msg := osc.NewMessage("/example")
//  var p osc.Packet
//  if err := p.InitFromContents(msg); err != nil {
//      return err
//  }
//  conn.Write(p.Bytes())
//
//Client and Server wrap both directions over UDP.
package osc
